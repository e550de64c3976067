// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wpbuild/internal/adapters/cas"
	_ "go.trai.ch/wpbuild/internal/adapters/config"
	_ "go.trai.ch/wpbuild/internal/adapters/esbuild"
	_ "go.trai.ch/wpbuild/internal/adapters/gettext"
	_ "go.trai.ch/wpbuild/internal/adapters/imaging"
	_ "go.trai.ch/wpbuild/internal/adapters/linear"
	_ "go.trai.ch/wpbuild/internal/adapters/logger"
	_ "go.trai.ch/wpbuild/internal/adapters/metrics"
	_ "go.trai.ch/wpbuild/internal/adapters/notify"
	_ "go.trai.ch/wpbuild/internal/adapters/reload"
	_ "go.trai.ch/wpbuild/internal/adapters/sass"
	_ "go.trai.ch/wpbuild/internal/adapters/stylesheet"
	_ "go.trai.ch/wpbuild/internal/adapters/telemetry"
	_ "go.trai.ch/wpbuild/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/wpbuild/internal/app"
	_ "go.trai.ch/wpbuild/internal/engine/pipeline"
	_ "go.trai.ch/wpbuild/internal/engine/scheduler"
	_ "go.trai.ch/wpbuild/internal/engine/watch"
)
