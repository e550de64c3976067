package ports

import (
	"context"

	"go.trai.ch/wpbuild/internal/core/domain"
)

// Reloader pushes reload events to connected browsers.
//
//go:generate mockgen -source=reloader.go -destination=mocks/mock_reloader.go -package=mocks
type Reloader interface {
	// Broadcast queues event for every connected client. It never waits for clients.
	Broadcast(event domain.ReloadEvent)
}

// DevServer is the browser facing side of the reload channel.
type DevServer interface {
	Reloader
	// Serve listens on cfg.Port until ctx is canceled, then closes every client.
	// ready, if not nil, is called once the listener is bound.
	Serve(ctx context.Context, cfg domain.Config, ready func(url string)) error
}
