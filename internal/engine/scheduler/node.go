package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/metrics"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/notify"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			notify.NodeID,
			metrics.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[*metrics.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(NewBoundary(log, notifier, recorder), tracer), nil
		},
	})
}
