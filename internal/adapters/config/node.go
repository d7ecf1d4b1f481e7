package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/adapters/fs"
	"go.trai.ch/tsrun/internal/adapters/logger"
	"go.trai.ch/tsrun/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the configuration resolver Graft node.
	ResolverNodeID graft.ID = "adapter.config_resolver"
	// LoaderNodeID is the unique identifier for the configuration loader Graft node.
	LoaderNodeID graft.ID = "adapter.config_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HostNodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			host, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(host), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HostNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			host, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(host, log), nil
		},
	})
}
