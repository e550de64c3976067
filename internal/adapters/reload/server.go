package reload

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var _ ports.DevServer = (*Server)(nil)

// Server implements ports.DevServer.
type Server struct {
	hub     *Hub
	logger  ports.Logger
	metrics http.Handler
	open    func(url string) error
}

// Option configures a Server.
type Option func(*Server)

// WithOpener replaces the function used to open a browser.
func WithOpener(open func(url string) error) Option {
	return func(s *Server) { s.open = open }
}

// WithMetricsHandler serves h on PathMetrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// NewServer creates a Server. metrics may be nil.
func NewServer(logger ports.Logger, metrics ports.Metrics, opts ...Option) *Server {
	s := &Server{
		hub:    NewHub(logger, metrics),
		logger: logger,
		open:   OpenBrowser,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Broadcast queues event for every connected browser.
func (s *Server) Broadcast(event domain.ReloadEvent) {
	s.hub.Broadcast(event)
}

// Clients returns the number of connected browsers.
func (s *Server) Clients() int {
	return s.hub.Len()
}

// Handler builds the request router for cfg.
func (s *Server) Handler(cfg domain.Config) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.Handle(PathSocket, s.hub)
	mux.HandleFunc(PathClient, serveClient)
	if s.metrics != nil {
		mux.Handle(PathMetrics, s.metrics)
	}

	if cfg.ProjectURL == "" {
		mux.Handle("/", staticHandler(cfg.Root))
		return mux, nil
	}
	target, err := parseProjectURL(cfg.ProjectURL)
	if err != nil {
		return nil, err
	}
	mux.Handle("/", newProxy(target))
	return mux, nil
}

// Serve listens on cfg.Port until ctx is canceled. Every browser is
// disconnected on return.
func (s *Server) Serve(ctx context.Context, cfg domain.Config, ready func(url string)) error {
	handler, err := s.Handler(cfg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(cfg.Port)))
	if err != nil {
		return domain.Classify(domain.ErrIO,
			zerr.With(zerr.Wrap(err, "failed to start dev server"), "port", cfg.Port))
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	srv.RegisterOnShutdown(s.hub.Close)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	port := ln.Addr().(*net.TCPAddr).Port
	url := "http://localhost:" + strconv.Itoa(port) + "/"
	if ready != nil {
		ready(url)
	}
	if cfg.BrowserAutoOpen && s.open != nil {
		if err := s.open(url); err != nil {
			s.logger.Warn("could not open browser: " + err.Error())
		}
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		s.hub.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return domain.Classify(domain.ErrIO, zerr.Wrap(err, "dev server stopped"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "failed to stop dev server")
	}
	return nil
}
