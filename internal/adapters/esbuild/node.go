package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/adapters/logger"
	"go.trai.ch/tsrun/internal/adapters/tsc"
	"go.trai.ch/tsrun/internal/core/ports"
)

// NodeID is the unique identifier for the compiler front end Graft node.
const NodeID graft.ID = "adapter.frontend"

func init() {
	graft.Register(graft.Node[ports.Frontend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tsc.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Frontend, error) {
			checker, err := graft.Dep[ports.TypeChecker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFrontend(checker, log), nil
		},
	})
}
