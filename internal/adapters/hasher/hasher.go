// Package hasher fingerprints dependency declarations with xxhash.
package hasher

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes manifest fingerprints.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns a 16 digit hex digest of the declaration.
// Requirement and generator order is significant; settings are a set.
func (h *Hasher) Fingerprint(m *domain.Manifest) string {
	hasher := xxhash.New()

	hashReferences(hasher, m.ListRequirements())
	hashReferences(hasher, m.ListBuildRequirements())

	// Sort settings for determinism
	settings := m.ListSettings()
	slices.Sort(settings)
	hashStrings(hasher, settings)

	hashStrings(hasher, m.ListGenerators())

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func hashReferences(hasher *xxhash.Digest, refs []domain.Reference) {
	for _, ref := range refs {
		_, _ = hasher.WriteString(ref.Name.String())
		_, _ = hasher.Write([]byte{'/'})
		_, _ = hasher.WriteString(ref.Version.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}

func hashStrings(hasher *xxhash.Digest, values []string) {
	for _, v := range values {
		_, _ = hasher.WriteString(v)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
