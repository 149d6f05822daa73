// Package ports defines the core interfaces for the application.
package ports

import (
	"io"

	"go.trai.ch/recipe/internal/core/domain"
)

// ManifestLoader defines the interface for finding and reading dependency manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Discover walks up from cwd and returns the path of the nearest manifest.
	Discover(cwd string) (string, error)

	// Load reads and validates the manifest at path.
	// It never returns a partially populated manifest.
	Load(path string) (*domain.Manifest, error)
}

// ManifestEncoder writes a manifest in one of the supported formats.
type ManifestEncoder interface {
	// Encode writes m to w in the given format.
	Encode(w io.Writer, m *domain.Manifest, format domain.Format) error
}
