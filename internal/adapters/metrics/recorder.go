// Package metrics records pipeline activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/wpbuild/internal/core/domain"
	"go.trai.ch/wpbuild/internal/core/ports"
)

const namespace = "wpbuild"

// Result labels of stage runs.
const (
	ResultSuccess = "success"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implements ports.Metrics on a private registry.
type Recorder struct {
	registry         *prom.Registry
	stageDuration    *prom.HistogramVec
	stageResults     *prom.CounterVec
	cacheLookups     *prom.CounterVec
	reloadBroadcasts *prom.CounterVec
	clients          prom.Gauge
}

// NewRecorder creates a Recorder and registers its metrics together with the
// Go runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prom.NewRegistry(),
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of stage invocations",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage invocations by outcome",
		}, []string{"stage", "result"}),
		cacheLookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "image_cache_lookups_total",
			Help:      "Image cache lookups by outcome",
		}, []string{"result"}),
		reloadBroadcasts: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "reload_broadcasts_total",
			Help:      "Reload events sent to browsers by kind",
		}, []string{"kind"}),
		clients: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "reload_clients",
			Help:      "Connected browser sessions",
		}),
	}
	r.registry.MustRegister(
		r.stageDuration,
		r.stageResults,
		r.cacheLookups,
		r.reloadBroadcasts,
		r.clients,
		promcollect.NewGoCollector(),
		promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveStage records a finished stage invocation. An empty input counts
// as skipped.
func (r *Recorder) ObserveStage(stage string, d time.Duration, err error) {
	result := ResultSuccess
	switch domain.Category(err) {
	case nil:
		if err != nil {
			result = ResultFailed
		}
	case domain.ErrEmptyInput:
		result = ResultSkipped
	default:
		result = ResultFailed
	}
	r.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	r.stageResults.WithLabelValues(stage, result).Inc()
}

// CacheLookup records an image cache hit or miss.
func (r *Recorder) CacheLookup(hit bool) {
	if hit {
		r.cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	r.cacheLookups.WithLabelValues("miss").Inc()
}

// ReloadBroadcast records a broadcast of the given kind.
func (r *Recorder) ReloadBroadcast(kind string) {
	r.reloadBroadcasts.WithLabelValues(kind).Inc()
}

// ClientsConnected sets the number of connected browsers.
func (r *Recorder) ClientsConnected(n int) {
	r.clients.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition formats.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		Registry:          r.registry,
	})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prom.Registry {
	return r.registry
}
