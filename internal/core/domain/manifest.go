package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

var (
	settingNameRegex   = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)
	generatorNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// Manifest field names as they appear in every manifest format.
const (
	FieldSettings      = "settings"
	FieldGenerators    = "generators"
	FieldRequires      = "requires"
	FieldToolRequires  = "tool_requires"
	FieldBuildRequires = "build_requires"
)

// Declaration is a manifest exactly as written, before validation.
type Declaration struct {
	Settings      []string
	Generators    []string
	Requires      []string
	ToolRequires  []string
	BuildRequires []string
}

// Manifest is a validated dependency declaration.
// It never changes after NewManifest returns, and every accessor returns a copy.
type Manifest struct {
	requirements      []Reference
	buildRequirements []Reference
	settings          []string
	generators        []string
}

// NewManifest validates a declaration.
// Any invalid entry fails the whole read; a partial manifest is never returned.
// BuildRequires is the legacy spelling of ToolRequires and is appended after it.
func NewManifest(decl Declaration) (*Manifest, error) {
	if len(decl.Requires)+len(decl.ToolRequires)+len(decl.BuildRequires) == 0 {
		err := zerr.With(ErrMalformedDeclaration, "field", FieldRequires)
		return nil, zerr.With(err, "reason", "no requirements or tool requirements declared")
	}

	requirements, err := parseReferences(FieldRequires, decl.Requires, nil)
	if err != nil {
		return nil, err
	}

	buildRequirements, err := parseReferences(FieldToolRequires, decl.ToolRequires, nil)
	if err != nil {
		return nil, err
	}
	buildRequirements, err = parseReferences(FieldBuildRequires, decl.BuildRequires, buildRequirements)
	if err != nil {
		return nil, err
	}

	settings, err := parseNames(FieldSettings, decl.Settings, settingNameRegex)
	if err != nil {
		return nil, err
	}

	generators, err := parseNames(FieldGenerators, decl.Generators, generatorNameRegex)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		requirements:      requirements,
		buildRequirements: buildRequirements,
		settings:          settings,
		generators:        generators,
	}, nil
}

// ListRequirements returns the compile/link-time dependencies in declaration order.
func (m *Manifest) ListRequirements() []Reference {
	return slices.Clone(m.requirements)
}

// ListBuildRequirements returns the tool-only dependencies in declaration order.
func (m *Manifest) ListBuildRequirements() []Reference {
	return slices.Clone(m.buildRequirements)
}

// ListSettings returns the build-setting axes. Each axis appears once.
func (m *Manifest) ListSettings() []string {
	return slices.Clone(m.settings)
}

// ListGenerators returns the generator names in listed order.
func (m *Manifest) ListGenerators() []string {
	return slices.Clone(m.generators)
}

// HasSetting reports whether dependency selection varies on the given axis.
func (m *Manifest) HasSetting(name string) bool {
	return slices.Contains(m.settings, name)
}

// Requirement looks up a compile/link-time dependency by name.
func (m *Manifest) Requirement(name string) (Reference, bool) {
	return findReference(m.requirements, name)
}

// BuildRequirement looks up a tool-only dependency by name.
func (m *Manifest) BuildRequirement(name string) (Reference, bool) {
	return findReference(m.buildRequirements, name)
}

// Declaration converts the manifest back to its written form.
// Legacy build_requires entries come back as tool_requires.
func (m *Manifest) Declaration() Declaration {
	return Declaration{
		Settings:     m.ListSettings(),
		Generators:   m.ListGenerators(),
		Requires:     referenceStrings(m.requirements),
		ToolRequires: referenceStrings(m.buildRequirements),
	}
}

func parseReferences(field string, entries []string, into []Reference) ([]Reference, error) {
	seen := make(map[string]struct{}, len(into)+len(entries))
	for _, ref := range into {
		seen[ref.Name.String()] = struct{}{}
	}

	for i, entry := range entries {
		label := fmt.Sprintf("%s[%d]", field, i)

		ref, err := ParseReference(strings.TrimSpace(entry))
		if err != nil {
			return nil, zerr.With(err, "field", label)
		}

		if _, exists := seen[ref.Name.String()]; exists {
			err := zerr.With(ErrDuplicateDependency, "field", label)
			return nil, zerr.With(err, "dependency", ref.Name.String())
		}
		seen[ref.Name.String()] = struct{}{}
		into = append(into, ref)
	}

	return into, nil
}

func parseNames(field string, entries []string, pattern *regexp.Regexp) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(entries))
	for i, entry := range entries {
		label := fmt.Sprintf("%s[%d]", field, i)
		name := strings.TrimSpace(entry)

		if !pattern.MatchString(name) {
			err := zerr.With(ErrMalformedDeclaration, "field", label)
			return nil, zerr.With(err, "entry", entry)
		}

		if slices.Contains(names, name) {
			err := zerr.With(ErrDuplicateEntry, "field", label)
			return nil, zerr.With(err, "entry", name)
		}
		names = append(names, name)
	}

	return names, nil
}

func findReference(refs []Reference, name string) (Reference, bool) {
	for _, ref := range refs {
		if ref.Name.String() == name {
			return ref, true
		}
	}
	return Reference{}, false
}

func referenceStrings(refs []Reference) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.String()
	}
	return out
}
