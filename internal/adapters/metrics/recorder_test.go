package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wpbuild/internal/adapters/metrics"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRecorder_ObserveStage(t *testing.T) {
	r := metrics.NewRecorder()

	r.ObserveStage("styles", 20*time.Millisecond, nil)
	r.ObserveStage("styles", 5*time.Millisecond, domain.Classify(domain.ErrCompile, errors.New("bad")))
	r.ObserveStage("vendorJS", time.Millisecond, zerr.Wrap(domain.ErrEmptyInput, "no vendors"))
	r.ObserveStage("images", time.Millisecond, errors.New("unclassified"))

	expected := `
# HELP wpbuild_stage_results_total Stage invocations by outcome
# TYPE wpbuild_stage_results_total counter
wpbuild_stage_results_total{result="failed",stage="images"} 1
wpbuild_stage_results_total{result="failed",stage="styles"} 1
wpbuild_stage_results_total{result="skipped",stage="vendorJS"} 1
wpbuild_stage_results_total{result="success",stage="styles"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "wpbuild_stage_results_total"))
	assert.Equal(t, 3, testutil.CollectAndCount(r.Registry(), "wpbuild_stage_duration_seconds"))
}

func TestRecorder_CountersAndGauge(t *testing.T) {
	r := metrics.NewRecorder()

	r.CacheLookup(true)
	r.CacheLookup(false)
	r.CacheLookup(false)
	r.ReloadBroadcast("inject")
	r.ClientsConnected(2)

	expected := `
# HELP wpbuild_image_cache_lookups_total Image cache lookups by outcome
# TYPE wpbuild_image_cache_lookups_total counter
wpbuild_image_cache_lookups_total{result="hit"} 1
wpbuild_image_cache_lookups_total{result="miss"} 2
# HELP wpbuild_reload_broadcasts_total Reload events sent to browsers by kind
# TYPE wpbuild_reload_broadcasts_total counter
wpbuild_reload_broadcasts_total{kind="inject"} 1
# HELP wpbuild_reload_clients Connected browser sessions
# TYPE wpbuild_reload_clients gauge
wpbuild_reload_clients 2
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"wpbuild_image_cache_lookups_total", "wpbuild_reload_broadcasts_total", "wpbuild_reload_clients"))
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.NewRecorder()
	r.ReloadBroadcast("reload")

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `wpbuild_reload_broadcasts_total{kind="reload"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
