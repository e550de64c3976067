package gettext

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/core/ports"
)

// NodeID is the unique identifier for the string extractor Graft node.
const NodeID graft.ID = "adapter.gettext"

func init() {
	graft.Register(graft.Node[ports.StringExtractor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StringExtractor, error) {
			return New(), nil
		},
	})
}
