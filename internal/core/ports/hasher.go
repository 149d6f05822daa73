package ports

import "go.trai.ch/recipe/internal/core/domain"

// Fingerprinter defines the interface for computing manifest fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a stable digest of the manifest's declared content.
	Fingerprint(m *domain.Manifest) string
}
