// Package report renders manifests and command results for the terminal, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"errors"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/ui/output"
	"go.trai.ch/recipe/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Mode selects how a manifest is printed.
type Mode string

const (
	// ModeText prints aligned tables with section headings.
	ModeText Mode = "text"
	// ModeJSON prints a single JSON document.
	ModeJSON Mode = "json"
	// ModeYAML prints a single YAML document.
	ModeYAML Mode = "yaml"
)

// ParseMode converts a user supplied output mode. Empty means text.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeText:
		return ModeText, nil
	case ModeJSON:
		return ModeJSON, nil
	case ModeYAML, "yml":
		return ModeYAML, nil
	default:
		return "", zerr.With(domain.ErrUnsupportedOutput, "output", s)
	}
}

// Document is the machine readable view of a manifest.
type Document struct {
	Path              string             `json:"path" yaml:"path"`
	Requirements      []domain.Reference `json:"requires" yaml:"requires"`
	BuildRequirements []domain.Reference `json:"tool_requires" yaml:"tool_requires"`
	Settings          []string           `json:"settings" yaml:"settings"`
	Generators        []string           `json:"generators" yaml:"generators"`
}

// NewDocument captures m as read from path.
func NewDocument(path string, m *domain.Manifest) Document {
	return Document{
		Path:              path,
		Requirements:      nonNil(m.ListRequirements()),
		BuildRequirements: nonNil(m.ListBuildRequirements()),
		Settings:          nonNil(m.ListSettings()),
		Generators:        nonNil(m.ListGenerators()),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Printer writes reports to a single writer.
type Printer struct {
	w       io.Writer
	heading lipgloss.Style
	muted   lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	changed lipgloss.Style
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := output.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(style.Iris),
		muted:   r.NewStyle().Foreground(style.Slate),
		ok:      r.NewStyle().Foreground(style.Green),
		failed:  r.NewStyle().Foreground(style.Red),
		changed: r.NewStyle().Foreground(style.Iris),
	}
}

// References prints a NAME VERSION table.
func (p *Printer) References(refs []domain.Reference) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tVERSION")
	for _, ref := range refs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", ref.Name, ref.Version)
	}
	return tw.Flush()
}

// Lines prints one value per line.
func (p *Printer) Lines(values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(p.w, v); err != nil {
			return err
		}
	}
	return nil
}

// Manifest prints every section of m in the given mode.
func (p *Printer) Manifest(path string, m *domain.Manifest, mode Mode) error {
	doc := NewDocument(path, m)

	switch mode {
	case ModeJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case ModeYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case ModeText:
		return p.manifestText(doc)
	default:
		return zerr.With(domain.ErrUnsupportedOutput, "output", string(mode))
	}
}

func (p *Printer) manifestText(doc Document) error {
	_, _ = fmt.Fprintln(p.w, p.muted.Render(doc.Path))

	sections := []struct {
		title string
		print func() error
		empty bool
	}{
		{"Requirements", func() error { return p.References(doc.Requirements) }, len(doc.Requirements) == 0},
		{"Build requirements", func() error { return p.References(doc.BuildRequirements) }, len(doc.BuildRequirements) == 0},
		{"Settings", func() error { return p.Lines(doc.Settings) }, len(doc.Settings) == 0},
		{"Generators", func() error { return p.Lines(doc.Generators) }, len(doc.Generators) == 0},
	}

	for _, s := range sections {
		_, _ = fmt.Fprintln(p.w)
		_, _ = fmt.Fprintln(p.w, p.heading.Render(s.title))
		if s.empty {
			_, _ = fmt.Fprintln(p.w, p.muted.Render("(none)"))
			continue
		}
		if err := s.print(); err != nil {
			return err
		}
	}
	return nil
}

// Validation prints the outcome of validating one manifest.
func (p *Printer) Validation(path string, err error) {
	if err == nil {
		_, _ = fmt.Fprintf(p.w, "%s %s\n", p.ok.Render(style.Check), path)
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s: %v\n", p.failed.Render(style.Cross), path, err)

	meta := errorMetadata(err)
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		_, _ = fmt.Fprintf(p.w, "    %s\n", p.muted.Render(fmt.Sprintf("%s: %v", k, meta[k])))
	}
}

// errorMetadata merges the zerr metadata of every link in the chain, outermost first.
// The path is already on the headline and is left out.
func errorMetadata(err error) map[string]any {
	meta := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		md, ok := current.(interface{ Metadata() map[string]any })
		if !ok {
			continue
		}
		for k, v := range md.Metadata() {
			if _, seen := meta[k]; !seen && k != "path" {
				meta[k] = v
			}
		}
	}
	return meta
}

// Status prints whether a manifest changed since its last recorded read.
func (p *Printer) Status(path, fingerprint string, changed bool) {
	if changed {
		_, _ = fmt.Fprintf(p.w, "%s %s changed (%s)\n", p.changed.Render(style.Tilde), path, fingerprint)
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s unchanged (%s)\n", p.ok.Render(style.Check), path, fingerprint)
}
