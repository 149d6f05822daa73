package recipefile

import (
	"bytes"
	"errors"
	"io"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// yamlManifest represents the structure of the recipe.yaml manifest.
type yamlManifest struct {
	Settings      []string `yaml:"settings,omitempty"`
	Generators    []string `yaml:"generators,omitempty"`
	Requires      []string `yaml:"requires,omitempty"`
	ToolRequires  []string `yaml:"tool_requires,omitempty"`
	BuildRequires []string `yaml:"build_requires,omitempty"`
}

func decodeYAML(data []byte) (domain.Declaration, error) {
	var dto yamlManifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return domain.Declaration{}, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	return domain.Declaration{
		Settings:      dto.Settings,
		Generators:    dto.Generators,
		Requires:      dto.Requires,
		ToolRequires:  dto.ToolRequires,
		BuildRequires: dto.BuildRequires,
	}, nil
}

func encodeYAML(w io.Writer, decl domain.Declaration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	dto := yamlManifest{
		Settings:     decl.Settings,
		Generators:   decl.Generators,
		Requires:     decl.Requires,
		ToolRequires: decl.ToolRequires,
	}
	if err := enc.Encode(dto); err != nil {
		return zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
	}
	return nil
}
