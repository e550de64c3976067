package ports

import "time"

// Metrics records pipeline activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveStage records a finished stage invocation.
	ObserveStage(stage string, d time.Duration, err error)
	// CacheLookup records an image cache hit or miss.
	CacheLookup(hit bool)
	// ReloadBroadcast records a broadcast of the given kind.
	ReloadBroadcast(kind string)
	// ClientsConnected sets the number of connected browsers.
	ClientsConnected(n int)
}
