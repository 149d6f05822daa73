// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/recipe/internal/adapters/cas"
	_ "go.trai.ch/recipe/internal/adapters/config"
	_ "go.trai.ch/recipe/internal/adapters/hasher"
	_ "go.trai.ch/recipe/internal/adapters/logger"
	_ "go.trai.ch/recipe/internal/adapters/recipefile"
	_ "go.trai.ch/recipe/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/recipe/internal/app"
)
