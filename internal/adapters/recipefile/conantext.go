package recipefile

import (
	"io"
	"strings"

	"github.com/go-ini/ini"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sections of a conanfile.txt that hold plain lines rather than key=value pairs.
var conanListSections = []string{
	domain.FieldRequires,
	domain.FieldToolRequires,
	domain.FieldBuildRequires,
	domain.FieldGenerators,
	domain.FieldSettings,
	"options",
	"layout",
}

// conanIgnoredSections are valid in a conanfile.txt but carry nothing the reader reports.
var conanIgnoredSections = map[string]bool{
	"options": true,
	"layout":  true,
}

func decodeConanText(data []byte) (domain.Declaration, []string, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:    true,
		UnparseableSections: conanListSections,
	}, data)
	if err != nil {
		return domain.Declaration{}, nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	var (
		decl    domain.Declaration
		ignored []string
	)

	for _, section := range cfg.Sections() {
		name := section.Name()
		switch {
		case name == ini.DefaultSection:
			if len(section.Keys()) > 0 {
				err := zerr.With(domain.ErrManifestParseFailed, "reason", "entries outside of a section")
				return domain.Declaration{}, nil, zerr.With(err, "entry", section.Keys()[0].Name())
			}
		case name == domain.FieldRequires:
			decl.Requires = append(decl.Requires, sectionLines(section.Body())...)
		case name == domain.FieldToolRequires:
			decl.ToolRequires = append(decl.ToolRequires, sectionLines(section.Body())...)
		case name == domain.FieldBuildRequires:
			decl.BuildRequires = append(decl.BuildRequires, sectionLines(section.Body())...)
		case name == domain.FieldGenerators:
			decl.Generators = append(decl.Generators, sectionLines(section.Body())...)
		case name == domain.FieldSettings:
			decl.Settings = append(decl.Settings, sectionLines(section.Body())...)
		case conanIgnoredSections[name]:
			ignored = append(ignored, name)
		default:
			return domain.Declaration{}, nil, zerr.With(domain.ErrUnknownSection, "section", name)
		}
	}

	return decl, ignored, nil
}

// sectionLines splits a raw section body into its non-blank lines.
// Comment lines never reach here; the ini parser drops them.
func sectionLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func encodeConanText(w io.Writer, decl domain.Declaration) error {
	cfg := ini.Empty()

	sections := []struct {
		name    string
		entries []string
	}{
		{domain.FieldRequires, decl.Requires},
		{domain.FieldToolRequires, decl.ToolRequires},
		{domain.FieldGenerators, decl.Generators},
		{domain.FieldSettings, decl.Settings},
	}

	for _, s := range sections {
		if len(s.entries) == 0 {
			continue
		}
		if _, err := cfg.NewRawSection(s.name, strings.Join(s.entries, "\n")+"\n"); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error()), "section", s.name)
		}
	}

	if _, err := cfg.WriteTo(w); err != nil {
		return zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
	}
	return nil
}
