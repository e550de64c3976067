package reload

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/adapters/logger"
	"go.trai.ch/wpbuild/internal/adapters/metrics"
	"go.trai.ch/wpbuild/internal/core/ports"
)

// NodeID is the unique identifier for the dev server Graft node.
const NodeID graft.ID = "adapter.reload"

func init() {
	graft.Register(graft.Node[ports.DevServer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, metrics.NodeID},
		Run: func(ctx context.Context) (ports.DevServer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[*metrics.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(log, recorder, WithMetricsHandler(recorder.Handler())), nil
		},
	})
}
