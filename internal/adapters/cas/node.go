package cas

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/adapters/esbuild"
	"go.trai.ch/tsrun/internal/adapters/fs"
	"go.trai.ch/tsrun/internal/adapters/logger"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

// NodeID is the unique identifier for the output cache Graft node.
const NodeID graft.ID = "adapter.output_cache"

func init() {
	graft.Register(graft.Node[ports.OutputCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HostNodeID, logger.NodeID, esbuild.NodeID},
		Run: func(ctx context.Context) (ports.OutputCache, error) {
			host, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			frontend, err := graft.Dep[ports.Frontend](ctx)
			if err != nil {
				return nil, err
			}
			dir := filepath.Join(host.CurrentDirectory(), domain.DefaultCachePath())
			return NewStore(host, log, frontend.Version(), dir), nil
		},
	})
}
