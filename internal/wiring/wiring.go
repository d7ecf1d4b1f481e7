// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tsrun/internal/adapters/cas"
	_ "go.trai.ch/tsrun/internal/adapters/config"
	_ "go.trai.ch/tsrun/internal/adapters/docreg"
	_ "go.trai.ch/tsrun/internal/adapters/esbuild"
	_ "go.trai.ch/tsrun/internal/adapters/fs"
	_ "go.trai.ch/tsrun/internal/adapters/logger"
	_ "go.trai.ch/tsrun/internal/adapters/tsc"
	_ "go.trai.ch/tsrun/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/tsrun/internal/app"
	_ "go.trai.ch/tsrun/internal/engine/transpiler"
)
