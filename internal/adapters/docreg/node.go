package docreg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/core/ports"
)

// NodeID is the unique identifier for the document registry Graft node.
const NodeID graft.ID = "adapter.document_registry"

func init() {
	graft.Register(graft.Node[ports.DocumentRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentRegistry, error) {
			return NewRegistry(DefaultBucketSize), nil
		},
	})
}
