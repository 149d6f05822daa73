package recipefile_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/recipefile"
	"go.trai.ch/recipe/internal/core/domain"
)

func TestEncoder_RoundTrip(t *testing.T) {
	original, err := domain.NewManifest(domain.Declaration{
		Settings:      []string{"os", "compiler", "build_type", "arch"},
		Generators:    []string{"CMakeToolchain", "CMakeDeps"},
		Requires:      []string{"mcap/1.2.1", "cargs/1.1.0", "nlohmann_json/3.11.3"},
		ToolRequires:  []string{"cmake/3.28.1"},
		BuildRequires: []string{"ninja/1.11.1"},
	})
	require.NoError(t, err)

	enc := recipefile.NewEncoder()
	l, _ := newLoader(t)

	for _, format := range domain.Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, enc.Encode(&buf, original, format))

			decoded, err := l.Decode(buf.Bytes(), format, "roundtrip")
			require.NoError(t, err, buf.String())

			assert.Equal(t, original.ListRequirements(), decoded.ListRequirements())
			assert.Equal(t, original.ListBuildRequirements(), decoded.ListBuildRequirements())
			assert.Equal(t, original.ListSettings(), decoded.ListSettings())
			assert.Equal(t, original.ListGenerators(), decoded.ListGenerators())
		})
	}
}

func TestEncoder_OmitsEmptySections(t *testing.T) {
	m, err := domain.NewManifest(domain.Declaration{Requires: []string{"zlib/1.3.1"}})
	require.NoError(t, err)

	enc := recipefile.NewEncoder()

	var yamlOut bytes.Buffer
	require.NoError(t, enc.Encode(&yamlOut, m, domain.FormatYAML))
	assert.Equal(t, "requires:\n  - zlib/1.3.1\n", yamlOut.String())

	var hclOut bytes.Buffer
	require.NoError(t, enc.Encode(&hclOut, m, domain.FormatHCL))
	assert.Equal(t, "requires = [\"zlib/1.3.1\"]\n", hclOut.String())

	var txtOut bytes.Buffer
	require.NoError(t, enc.Encode(&txtOut, m, domain.FormatConanText))
	assert.Contains(t, txtOut.String(), "[requires]\nzlib/1.3.1\n")
	assert.NotContains(t, txtOut.String(), "[generators]")
}

func TestEncoder_UnsupportedFormat(t *testing.T) {
	m, err := domain.NewManifest(domain.Declaration{Requires: []string{"zlib/1.3.1"}})
	require.NoError(t, err)

	err = recipefile.NewEncoder().Encode(&bytes.Buffer{}, m, domain.Format("toml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedFormat.Error())
}
