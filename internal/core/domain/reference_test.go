package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		input   string
		name    string
		version string
	}{
		{"mcap/1.2.1", "mcap", "1.2.1"},
		{"cargs/1.1.0", "cargs", "1.1.0"},
		{"nlohmann_json/3.11.3", "nlohmann_json", "3.11.3"},
		{"cmake/3.28.1", "cmake", "3.28.1"},
		{"libjpeg-turbo/3.0.2", "libjpeg-turbo", "3.0.2"},
		{"openssl/3.2.1+build.4", "openssl", "3.2.1+build.4"},
		{"boost/cci.20240101", "boost", "cci.20240101"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ref, err := domain.ParseReference(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.name, ref.Name.String())
			assert.Equal(t, tt.version, ref.Version.String())
			assert.Equal(t, tt.input, ref.String())
		})
	}
}

func TestParseReference_Malformed(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"mcap-1.2.1", "expected format: name/version"},
		{"mcap", "expected format: name/version"},
		{"mcap/1.2.1@user/stable", "expected format: name/version"},
		{"/1.2.1", "invalid dependency name"},
		{"Mcap/1.2.1", "invalid dependency name"},
		{"m/1.0", "invalid dependency name"},
		{"mcap/", "invalid dependency version"},
		{"mcap/[>=1.0 <2]", "invalid dependency version"},
		{"mcap/1.2.1#rev", "invalid dependency version"},
		{"", "expected format: name/version"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := domain.ParseReference(tt.input)
			require.Error(t, err)
			require.ErrorContains(t, err, domain.ErrMalformedDeclaration.Error())

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)

			meta := zErr.Metadata()
			assert.Equal(t, tt.input, meta["entry"])
			assert.Equal(t, tt.reason, meta["reason"])
		})
	}
}

func TestNewReference(t *testing.T) {
	ref := domain.NewReference("cmake", "3.28.1")
	parsed, err := domain.ParseReference("cmake/3.28.1")
	require.NoError(t, err)
	assert.Equal(t, parsed, ref)
}
