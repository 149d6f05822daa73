package recipefile

import (
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// hclManifest represents the attributes of a recipe.hcl manifest.
type hclManifest struct {
	Settings      []string `hcl:"settings,optional"`
	Generators    []string `hcl:"generators,optional"`
	Requires      []string `hcl:"requires,optional"`
	ToolRequires  []string `hcl:"tool_requires,optional"`
	BuildRequires []string `hcl:"build_requires,optional"`
}

func decodeHCL(data []byte, filename string) (domain.Declaration, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return domain.Declaration{}, zerr.Wrap(diags, domain.ErrManifestParseFailed.Error())
	}

	var dto hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &dto); diags.HasErrors() {
		return domain.Declaration{}, zerr.Wrap(diags, domain.ErrManifestParseFailed.Error())
	}

	return domain.Declaration{
		Settings:      dto.Settings,
		Generators:    dto.Generators,
		Requires:      dto.Requires,
		ToolRequires:  dto.ToolRequires,
		BuildRequires: dto.BuildRequires,
	}, nil
}

func encodeHCL(w io.Writer, decl domain.Declaration) error {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	setStringList(body, domain.FieldSettings, decl.Settings)
	setStringList(body, domain.FieldGenerators, decl.Generators)
	setStringList(body, domain.FieldRequires, decl.Requires)
	setStringList(body, domain.FieldToolRequires, decl.ToolRequires)

	if _, err := w.Write(hclwrite.Format(file.Bytes())); err != nil {
		return zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
	}
	return nil
}

// setStringList writes name = ["a", "b"]. Empty lists are omitted.
func setStringList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		return
	}

	items := make([]cty.Value, len(values))
	for i, v := range values {
		items[i] = cty.StringVal(v)
	}
	body.SetAttributeValue(name, cty.ListVal(items))
}
