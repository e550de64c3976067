package watch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/watcher" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/engine/scheduler"
)

// NodeID is the unique identifier for the watch supervisor Graft node.
const NodeID graft.ID = "engine.watch"

func init() {
	graft.Register(graft.Node[*Supervisor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{watcher.NodeID, scheduler.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Supervisor, error) {
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[*scheduler.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewSupervisor(w, runner, log), nil
		},
	})
}
