package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/adapters/linear"
	"go.trai.ch/wpbuild/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer of every task span.
const InstrumentationName = "wpbuild"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(InstrumentationName, renderer), nil
		},
	})
}
