package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the esbuild Graft node.
const NodeID graft.ID = "adapter.esbuild"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Engine, error) {
			return New(), nil
		},
	})
}
