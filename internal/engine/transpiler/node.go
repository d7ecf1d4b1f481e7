package transpiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/adapters/cas"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsrun/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsrun/internal/adapters/docreg"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsrun/internal/adapters/esbuild" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsrun/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsrun/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsrun/internal/core/ports"
)

// NodeID is the unique identifier for the transpiler service Graft node.
const NodeID graft.ID = "engine.transpiler"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HostNodeID,
			config.ResolverNodeID,
			config.LoaderNodeID,
			esbuild.NodeID,
			docreg.NodeID,
			cas.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Service, error) {
			host, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ConfigResolver](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			frontend, err := graft.Dep[ports.Frontend](ctx)
			if err != nil {
				return nil, err
			}

			documents, err := graft.Dep[ports.DocumentRegistry](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.OutputCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewService(host, resolver, loader, frontend, documents, cache, log), nil
		},
	})
}
