package recipefile

import (
	"io"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestEncoder = (*Encoder)(nil)

// Encoder implements ports.ManifestEncoder for every supported format.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes m to w. Re-reading the output yields an equal manifest.
func (e *Encoder) Encode(w io.Writer, m *domain.Manifest, format domain.Format) error {
	decl := m.Declaration()

	switch format {
	case domain.FormatYAML:
		return encodeYAML(w, decl)
	case domain.FormatHCL:
		return encodeHCL(w, decl)
	case domain.FormatConanText:
		return encodeConanText(w, decl)
	default:
		return zerr.With(domain.ErrUnsupportedFormat, "format", string(format))
	}
}
