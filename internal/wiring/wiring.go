// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/aoc/internal/adapters/aoc"
	_ "go.trai.ch/aoc/internal/adapters/cache"
	_ "go.trai.ch/aoc/internal/adapters/cargo"
	_ "go.trai.ch/aoc/internal/adapters/config"
	_ "go.trai.ch/aoc/internal/adapters/fs"
	_ "go.trai.ch/aoc/internal/adapters/logger"
	_ "go.trai.ch/aoc/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/aoc/internal/app"
)
