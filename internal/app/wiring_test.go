package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/config"
	"go.trai.ch/recipe/internal/app"
	_ "go.trai.ch/recipe/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvStateFile, filepath.Join(t.TempDir(), "state.json"))
	t.Setenv(config.EnvLogLevel, "warn")

	// Verify that the application graph can be constructed
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Settings)
}
