package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/cmd/recipe/commands"
	"go.trai.ch/recipe/internal/app"
	"go.trai.ch/recipe/internal/build"
	"go.trai.ch/recipe/internal/core/domain"
)

type mockApp struct {
	readFunc     func(ctx context.Context, opts app.ReadOptions) (*app.Inspection, error)
	statusFunc   func(ctx context.Context, opts app.ReadOptions) (*app.StatusResult, error)
	validateFunc func(ctx context.Context, paths []string) ([]app.ValidationResult, error)
	convertFunc  func(ctx context.Context, opts app.ReadOptions, w io.Writer, format domain.Format) error
}

func (m *mockApp) Read(ctx context.Context, opts app.ReadOptions) (*app.Inspection, error) {
	if m.readFunc != nil {
		return m.readFunc(ctx, opts)
	}
	return nil, errors.New("unexpected read")
}

func (m *mockApp) Status(ctx context.Context, opts app.ReadOptions) (*app.StatusResult, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, opts)
	}
	return nil, errors.New("unexpected status")
}

func (m *mockApp) Validate(ctx context.Context, paths []string) ([]app.ValidationResult, error) {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, paths)
	}
	return nil, errors.New("unexpected validate")
}

func (m *mockApp) Convert(ctx context.Context, opts app.ReadOptions, w io.Writer, format domain.Format) error {
	if m.convertFunc != nil {
		return m.convertFunc(ctx, opts, w, format)
	}
	return errors.New("unexpected convert")
}

func compressor(t *testing.T) *domain.Manifest {
	t.Helper()
	m, err := domain.NewManifest(domain.Declaration{
		Settings:     []string{"os", "compiler", "build_type", "arch"},
		Generators:   []string{"CMakeToolchain", "CMakeDeps"},
		Requires:     []string{"mcap/1.2.1", "cargs/1.1.0", "nlohmann_json/3.11.3"},
		ToolRequires: []string{"cmake/3.28.1"},
	})
	require.NoError(t, err)
	return m
}

// readingApp serves the compressor manifest and records the options it was asked for.
func readingApp(t *testing.T, captured *app.ReadOptions) *mockApp {
	t.Helper()
	m := compressor(t)
	return &mockApp{
		readFunc: func(_ context.Context, opts app.ReadOptions) (*app.Inspection, error) {
			*captured = opts
			return &app.Inspection{Path: "recipe.yaml", Manifest: m}, nil
		},
	}
}

func execute(t *testing.T, cli *commands.CLI, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Requirements(t *testing.T) {
	var opts app.ReadOptions
	out, err := execute(t, commands.New(readingApp(t, &opts), ""), "requirements", "--file", "deps/recipe.yaml")
	require.NoError(t, err)

	assert.Equal(t, "deps/recipe.yaml", opts.Path)
	assert.Equal(t, "NAME           VERSION\n"+
		"mcap           1.2.1\n"+
		"cargs          1.1.0\n"+
		"nlohmann_json  3.11.3\n", out)
}

func TestCommands_BuildRequirements(t *testing.T) {
	for _, name := range []string{"build-requirements", "tool-requirements"} {
		t.Run(name, func(t *testing.T) {
			var opts app.ReadOptions
			out, err := execute(t, commands.New(readingApp(t, &opts), ""), name)
			require.NoError(t, err)

			assert.Empty(t, opts.Path)
			assert.NotEmpty(t, opts.Dir, "discovery starts from the working directory")
			assert.Equal(t, "NAME   VERSION\ncmake  3.28.1\n", out)
		})
	}
}

func TestCommands_SettingsAndGenerators(t *testing.T) {
	var opts app.ReadOptions

	out, err := execute(t, commands.New(readingApp(t, &opts), "from-env.yaml"), "settings")
	require.NoError(t, err)
	assert.Equal(t, "os\ncompiler\nbuild_type\narch\n", out)
	assert.Equal(t, "from-env.yaml", opts.Path, "default file comes from settings")

	out, err = execute(t, commands.New(readingApp(t, &opts), ""), "generators")
	require.NoError(t, err)
	assert.Equal(t, "CMakeToolchain\nCMakeDeps\n", out)
}

func TestCommands_LookupByName(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "declared requirement",
			args: []string{"requirements", "cargs"},
			want: "NAME   VERSION\ncargs  1.1.0\n",
		},
		{
			name: "declared build requirement",
			args: []string{"build-requirements", "cmake"},
			want: "NAME   VERSION\ncmake  3.28.1\n",
		},
		{
			name:    "tool is not a requirement",
			args:    []string{"requirements", "cmake"},
			wantErr: domain.ErrDependencyNotDeclared,
		},
		{
			name:    "requirement is not a tool",
			args:    []string{"tool-requirements", "mcap"},
			wantErr: domain.ErrDependencyNotDeclared,
		},
		{
			name: "declared setting",
			args: []string{"settings", "build_type"},
			want: "build_type\n",
		},
		{
			name:    "undeclared setting",
			args:    []string{"settings", "os.version"},
			wantErr: domain.ErrSettingNotDeclared,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts app.ReadOptions
			out, err := execute(t, commands.New(readingApp(t, &opts), ""), tt.args...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommands_Show(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var opts app.ReadOptions
		out, err := execute(t, commands.New(readingApp(t, &opts), ""), "show")
		require.NoError(t, err)
		assert.Contains(t, out, "Requirements\n")
		assert.Contains(t, out, "Generators\nCMakeToolchain\nCMakeDeps\n")
	})

	t.Run("json", func(t *testing.T) {
		var opts app.ReadOptions
		out, err := execute(t, commands.New(readingApp(t, &opts), ""), "show", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"name": "nlohmann_json"`)
	})

	t.Run("unsupported output", func(t *testing.T) {
		var opts app.ReadOptions
		_, err := execute(t, commands.New(readingApp(t, &opts), ""), "show", "-o", "xml")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnsupportedOutput.Error())
	})
}

func TestCommands_ReadError(t *testing.T) {
	mock := &mockApp{
		readFunc: func(_ context.Context, _ app.ReadOptions) (*app.Inspection, error) {
			return nil, domain.ErrMalformedDeclaration
		},
	}

	out, err := execute(t, commands.New(mock, ""), "requirements")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedDeclaration)
	assert.Empty(t, out, "nothing is printed for a rejected manifest")
}

func TestCommands_Validate(t *testing.T) {
	t.Run("paths", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			validateFunc: func(_ context.Context, paths []string) ([]app.ValidationResult, error) {
				captured = paths
				return []app.ValidationResult{
					{Path: "a/recipe.yaml"},
					{Path: "b/conanfile.txt", Err: errors.New("duplicate dependency")},
				}, errors.Join(domain.ErrManifestRejected, errors.New("duplicate dependency"))
			},
		}

		out, err := execute(t, commands.New(mock, ""), "validate", "a/recipe.yaml", "b/conanfile.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrManifestRejected)
		assert.Equal(t, []string{"a/recipe.yaml", "b/conanfile.txt"}, captured)
		assert.Equal(t, "✓ a/recipe.yaml\n✗ b/conanfile.txt: duplicate dependency\n", out)
	})

	t.Run("no paths checks the selected manifest", func(t *testing.T) {
		var opts app.ReadOptions
		out, err := execute(t, commands.New(readingApp(t, &opts), ""), "validate")
		require.NoError(t, err)
		assert.Equal(t, "✓ recipe.yaml\n", out)
	})
}

func TestCommands_Validate_ShowsOffendingField(t *testing.T) {
	_, readErr := domain.NewManifest(domain.Declaration{Requires: []string{"mcap/1.2.1", "cargs-1.1.0"}})
	require.Error(t, readErr)

	mock := &mockApp{
		validateFunc: func(_ context.Context, paths []string) ([]app.ValidationResult, error) {
			return []app.ValidationResult{{Path: paths[0], Err: readErr}},
				errors.Join(domain.ErrManifestRejected, readErr)
		},
	}

	out, err := execute(t, commands.New(mock, ""), "validate", "bad/recipe.yaml")
	require.Error(t, err)
	assert.Contains(t, out, "✗ bad/recipe.yaml: malformed declaration")
	assert.Contains(t, out, "field: requires[1]")
	assert.Contains(t, out, "entry: cargs-1.1.0")
}

func TestCommands_Convert(t *testing.T) {
	t.Run("writes encoded manifest", func(t *testing.T) {
		var captured domain.Format
		mock := &mockApp{
			convertFunc: func(_ context.Context, _ app.ReadOptions, w io.Writer, format domain.Format) error {
				captured = format
				_, err := io.WriteString(w, "[requires]\nmcap/1.2.1\n")
				return err
			},
		}

		out, err := execute(t, commands.New(mock, ""), "convert", "--to", "conanfile")
		require.NoError(t, err)
		assert.Equal(t, domain.FormatConanText, captured)
		assert.Equal(t, "[requires]\nmcap/1.2.1\n", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, commands.New(&mockApp{}, ""), "convert", "--to", "toml")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnsupportedFormat.Error())
	})
}

func TestCommands_Status(t *testing.T) {
	mock := &mockApp{
		statusFunc: func(_ context.Context, opts app.ReadOptions) (*app.StatusResult, error) {
			return &app.StatusResult{Path: opts.Path, Fingerprint: "00000000000000ff", Changed: true}, nil
		},
	}

	out, err := execute(t, commands.New(mock, ""), "status", "-f", "recipe.yaml")
	require.NoError(t, err)
	assert.Equal(t, "~ recipe.yaml changed (00000000000000ff)\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, commands.New(&mockApp{}, ""), "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)

	out, err = execute(t, commands.New(&mockApp{}, ""), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "recipe version "+build.Version)
}
