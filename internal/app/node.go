package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsrun/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tsrun/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/tsrun/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tsrun/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/tsrun/internal/core/ports"
	"go.trai.ch/tsrun/internal/engine/transpiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			transpiler.NodeID,
			fs.HostNodeID,
			cas.NodeID,
			watcher.WatcherNodeID,
			watcher.ChangeFilterNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	svc, err := graft.Dep[*transpiler.Service](ctx)
	if err != nil {
		return nil, err
	}

	host, err := graft.Dep[ports.Host](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.OutputCache](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	changes, err := graft.Dep[*watcher.ChangeFilter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(svc, host, cache, w, changes, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
