package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/adapters/fs"
	"go.trai.ch/tsrun/internal/adapters/logger"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ChangeFilterNodeID is the unique identifier for the change filter Graft node.
	ChangeFilterNodeID graft.ID = "adapter.change_filter"
)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 100 * time.Millisecond

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log, domain.ToolDirName)
		},
	})

	graft.Register(graft.Node[*ChangeFilter]{
		ID:        ChangeFilterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*ChangeFilter, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewChangeFilter(hasher), nil
		},
	})
}
