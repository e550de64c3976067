// Package reload pushes rebuild notifications to browsers over a websocket
// and serves the development site they are connected to.
package reload

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// QueueSize bounds the events waiting for one client.
	QueueSize = 16

	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Message is the JSON payload sent to browsers.
type Message struct {
	Type  string   `json:"type"`
	Paths []string `json:"paths,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans reload events out to connected clients. A slow client never
// delays the others: when its queue is full the event is dropped for it.
type Hub struct {
	logger  ports.Logger
	metrics ports.Metrics

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates a Hub. metrics may be nil.
func NewHub(logger ports.Logger, metrics ports.Metrics) *Hub {
	return &Hub{
		logger:  logger,
		metrics: metrics,
		clients: make(map[*client]struct{}),
	}
}

// Broadcast queues event for every connected client without waiting.
func (h *Hub) Broadcast(event domain.ReloadEvent) {
	payload, err := json.Marshal(Message{Type: event.Kind.String(), Paths: event.Paths})
	if err != nil {
		h.logger.Error(zerr.Wrap(err, "failed to encode reload event"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
		}
	}
	if h.metrics != nil {
		h.metrics.ReloadBroadcast(event.Kind.String())
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request to a websocket and keeps the client
// registered until it disconnects or the hub closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed: " + err.Error())
		return
	}

	c := &client{conn: conn, send: make(chan []byte, QueueSize)}
	if !h.add(c) {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer h.remove(c)

	ctx := conn.CloseRead(r.Context())
	h.writeLoop(ctx, c)
}

func (h *Hub) writeLoop(ctx context.Context, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	h.reportLocked()
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	_ = c.conn.CloseNow()
	h.reportLocked()
}

func (h *Hub) reportLocked() {
	if h.metrics != nil {
		h.metrics.ClientsConnected(len(h.clients))
	}
}

// Close disconnects every client. Later connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		close(c.send)
	}
}
