package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HostNodeID is the unique identifier for the file system host Graft node.
	HostNodeID graft.ID = "adapter.fs.host"
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Host]{
		ID:        HostNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Host, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewOSHost(walker)
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})
}
