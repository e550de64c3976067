package reload_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpbuild/internal/adapters/reload"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, opts ...reload.Option) (*reload.Server, *mocks.MockMetrics) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ClientsConnected(gomock.Any()).AnyTimes()
	return reload.NewServer(log, metrics, opts...), metrics
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServer_BroadcastReachesClient(t *testing.T) {
	srv, metrics := newServer(t)
	metrics.EXPECT().ReloadBroadcast("inject")

	handler, err := srv.Handler(domain.Config{Root: t.TempDir()})
	require.NoError(t, err)
	ts := httptest.NewServer(handler)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+reload.PathSocket, nil)
	require.NoError(t, err)
	defer func() { _ = conn.CloseNow() }()

	require.Eventually(t, func() bool { return srv.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	srv.Broadcast(domain.Inject("style.css", "style.min.css"))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg reload.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, reload.Message{Type: "inject", Paths: []string{"style.css", "style.min.css"}}, msg)
}

func TestServer_BroadcastNeverBlocks(t *testing.T) {
	srv, metrics := newServer(t)
	metrics.EXPECT().ReloadBroadcast("reload").AnyTimes()

	handler, err := srv.Handler(domain.Config{Root: t.TempDir()})
	require.NoError(t, err)
	ts := httptest.NewServer(handler)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+reload.PathSocket, nil)
	require.NoError(t, err)
	defer func() { _ = conn.CloseNow() }()
	require.Eventually(t, func() bool { return srv.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		for range 10 * reload.QueueSize {
			srv.Broadcast(domain.FullReload())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on an unread client")
	}
}

func TestServer_StaticInjectsClient(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html><body><h1>Hi</h1></body></html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "style.css"), []byte("h1{color:red}"), 0o600))

	srv, _ := newServer(t)
	handler, err := srv.Handler(domain.Config{Root: root})
	require.NoError(t, err)
	ts := httptest.NewServer(handler)
	defer ts.Close()

	_, page := get(t, ts.URL+"/")
	assert.Equal(t, `<html><body><h1>Hi</h1><script src="/__wpbuild/client.js" async></script></body></html>`, page)

	_, css := get(t, ts.URL+"/style.css")
	assert.Equal(t, "h1{color:red}", css)

	resp, script := get(t, ts.URL+reload.PathClient)
	assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")
	assert.Contains(t, script, "/__wpbuild/ws")
}

func TestServer_ProxyRewritesPages(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "http://" + r.Host
		if r.URL.Path == "/old" {
			http.Redirect(w, r, origin+"/new", http.StatusFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		_, _ = io.WriteString(w, `<a href="`+origin+`/about">About</a><script>var u="`+strings.ReplaceAll(origin, "/", `\/`)+`";</script>`)
	}))
	defer upstream.Close()

	srv, _ := newServer(t)
	handler, err := srv.Handler(domain.Config{ProjectURL: upstream.URL})
	require.NoError(t, err)
	ts := httptest.NewServer(handler)
	defer ts.Close()

	proxyOrigin := ts.URL
	_, page := get(t, ts.URL+"/")
	assert.Contains(t, page, `<a href="`+proxyOrigin+`/about">`)
	assert.Contains(t, page, strings.ReplaceAll(proxyOrigin, "/", `\/`))
	assert.True(t, strings.HasSuffix(page, `<script src="/__wpbuild/client.js" async></script>`))

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Get(ts.URL + "/old")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, proxyOrigin+"/new", resp.Header.Get("Location"))
}

func TestServer_InvalidProjectURL(t *testing.T) {
	srv, _ := newServer(t)
	_, err := srv.Handler(domain.Config{ProjectURL: "http://"})
	require.ErrorIs(t, err, domain.ErrConfig)
}

func TestServer_ServeUntilCanceled(t *testing.T) {
	opened := make(chan string, 1)
	srv, _ := newServer(t, reload.WithOpener(func(url string) error {
		opened <- url
		return nil
	}), reload.WithMetricsHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "metrics")
	})))

	ctx, cancel := context.WithCancel(t.Context())
	readyURL := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx, domain.Config{Root: t.TempDir(), BrowserAutoOpen: true}, func(url string) { readyURL <- url })
	}()

	url := <-readyURL
	assert.Equal(t, url, <-opened)
	_, body := get(t, strings.TrimSuffix(url, "/")+reload.PathMetrics)
	assert.Equal(t, "metrics", body)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
