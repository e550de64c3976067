package stylesheet

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the stylesheet transformer Graft node.
const NodeID graft.ID = "adapter.stylesheet"

func init() {
	graft.Register(graft.Node[*Transformer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Transformer, error) {
			return New(), nil
		},
	})
}
