package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/hasher"
	"go.trai.ch/recipe/internal/core/domain"
)

func mustManifest(t *testing.T, decl domain.Declaration) *domain.Manifest {
	t.Helper()
	m, err := domain.NewManifest(decl)
	require.NoError(t, err)
	return m
}

func TestHasher_Fingerprint(t *testing.T) {
	base := domain.Declaration{
		Settings:     []string{"os", "compiler", "build_type", "arch"},
		Generators:   []string{"CMakeToolchain", "CMakeDeps"},
		Requires:     []string{"mcap/1.2.1", "cargs/1.1.0"},
		ToolRequires: []string{"cmake/3.28.1"},
	}
	h := hasher.NewHasher()
	want := h.Fingerprint(mustManifest(t, base))
	assert.Len(t, want, 16)

	tests := []struct {
		name   string
		mutate func(d *domain.Declaration)
		same   bool
	}{
		{
			name:   "identical declaration",
			mutate: func(*domain.Declaration) {},
			same:   true,
		},
		{
			name:   "settings reordered",
			mutate: func(d *domain.Declaration) { d.Settings = []string{"arch", "build_type", "compiler", "os"} },
			same:   true,
		},
		{
			name:   "tool_requires spelled build_requires",
			mutate: func(d *domain.Declaration) { d.ToolRequires, d.BuildRequires = nil, []string{"cmake/3.28.1"} },
			same:   true,
		},
		{
			name:   "requirement version bumped",
			mutate: func(d *domain.Declaration) { d.Requires = []string{"mcap/1.2.2", "cargs/1.1.0"} },
		},
		{
			name:   "requirements reordered",
			mutate: func(d *domain.Declaration) { d.Requires = []string{"cargs/1.1.0", "mcap/1.2.1"} },
		},
		{
			name:   "requirement moved to tool requirements",
			mutate: func(d *domain.Declaration) { d.Requires, d.ToolRequires = []string{"mcap/1.2.1"}, []string{"cargs/1.1.0", "cmake/3.28.1"} },
		},
		{
			name:   "generators reordered",
			mutate: func(d *domain.Declaration) { d.Generators = []string{"CMakeDeps", "CMakeToolchain"} },
		},
		{
			name:   "setting removed",
			mutate: func(d *domain.Declaration) { d.Settings = []string{"os", "compiler", "build_type"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := base
			decl.Settings = append([]string(nil), base.Settings...)
			tt.mutate(&decl)

			got := h.Fingerprint(mustManifest(t, decl))
			if tt.same {
				assert.Equal(t, want, got)
			} else {
				assert.NotEqual(t, want, got)
			}
		})
	}
}
