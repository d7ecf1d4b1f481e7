package tsc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/adapters/fs"
	"go.trai.ch/tsrun/internal/adapters/logger"
	"go.trai.ch/tsrun/internal/core/ports"
)

// NodeID is the unique identifier for the type checker Graft node.
const NodeID graft.ID = "adapter.type_checker"

func init() {
	graft.Register(graft.Node[ports.TypeChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HostNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TypeChecker, error) {
			host, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(host, hasher, log), nil
		},
	})
}
