package app

import (
	"go.trai.ch/recipe/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *config.Settings
}
