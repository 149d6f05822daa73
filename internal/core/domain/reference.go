package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var (
	referenceNameRegex    = regexp.MustCompile(`^[a-z0-9_][a-z0-9_+.-]{1,100}$`)
	referenceVersionRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_+.-]{0,100}$`)
)

// Reference is a dependency pinned to one exact version, written "name/version" in a manifest.
type Reference struct {
	// Name is the package name (e.g., "mcap", "nlohmann_json").
	Name InternedString `json:"name" yaml:"name"`

	// Version is the exact required version (e.g., "1.2.1").
	Version InternedString `json:"version" yaml:"version"`
}

// NewReference builds a Reference without validating it.
func NewReference(name, version string) Reference {
	return Reference{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
	}
}

// ParseReference parses a "name/version" string.
// Anything else, including user/channel or revision suffixes, is an ErrMalformedDeclaration.
func ParseReference(s string) (Reference, error) {
	name, version, found := strings.Cut(s, "/")
	if !found || strings.Contains(version, "/") {
		return Reference{}, malformedReference(s, "expected format: name/version")
	}

	if !referenceNameRegex.MatchString(name) {
		return Reference{}, malformedReference(s, "invalid dependency name")
	}

	if !referenceVersionRegex.MatchString(version) {
		return Reference{}, malformedReference(s, "invalid dependency version")
	}

	return NewReference(name, version), nil
}

// String returns the "name/version" form.
func (r Reference) String() string {
	return r.Name.String() + "/" + r.Version.String()
}

func malformedReference(entry, reason string) error {
	err := zerr.With(ErrMalformedDeclaration, "entry", entry)
	return zerr.With(err, "reason", reason)
}
