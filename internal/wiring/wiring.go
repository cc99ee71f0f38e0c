// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rbuild/internal/adapters/cas"
	_ "go.trai.ch/rbuild/internal/adapters/config"
	_ "go.trai.ch/rbuild/internal/adapters/fs"
	_ "go.trai.ch/rbuild/internal/adapters/logger"
	_ "go.trai.ch/rbuild/internal/adapters/scanner"
	_ "go.trai.ch/rbuild/internal/adapters/shell"
	_ "go.trai.ch/rbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/rbuild/internal/app"
	_ "go.trai.ch/rbuild/internal/engine/scheduler"
)
