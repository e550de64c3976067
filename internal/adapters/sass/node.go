package sass

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/adapters/esbuild"
	"go.trai.ch/wpbuild/internal/adapters/logger"
	"go.trai.ch/wpbuild/internal/core/ports"
)

// NodeID is the unique identifier for the Sass compiler Graft node.
const NodeID graft.ID = "adapter.sass"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, esbuild.NodeID},
		Run: func(ctx context.Context) (*Compiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[*esbuild.Engine](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(log, engine), nil
		},
	})
}
