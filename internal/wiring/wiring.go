// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dedup/internal/adapters/cas"
	_ "go.trai.ch/dedup/internal/adapters/config"
	_ "go.trai.ch/dedup/internal/adapters/fs"
	_ "go.trai.ch/dedup/internal/adapters/lockfile"
	_ "go.trai.ch/dedup/internal/adapters/logger"
	_ "go.trai.ch/dedup/internal/adapters/resolve"
	_ "go.trai.ch/dedup/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/dedup/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/dedup/internal/app"
	_ "go.trai.ch/dedup/internal/engine/dupcache"
	_ "go.trai.ch/dedup/internal/engine/scanner"
)
