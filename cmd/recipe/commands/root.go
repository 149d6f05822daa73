// Package commands implements the CLI commands for recipe.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
	"go.trai.ch/recipe/internal/build"
	"go.trai.ch/recipe/internal/core/domain"
)

// CLI represents the command line interface for recipe.
type CLI struct {
	app          Application
	rootCmd      *cobra.Command
	manifestFile string
}

// Application represents the application logic interface.
type Application interface {
	Read(ctx context.Context, opts app.ReadOptions) (*app.Inspection, error)
	Status(ctx context.Context, opts app.ReadOptions) (*app.StatusResult, error)
	Validate(ctx context.Context, paths []string) ([]app.ValidationResult, error)
	Convert(ctx context.Context, opts app.ReadOptions, w io.Writer, format domain.Format) error
}

// New creates a new CLI instance with the given app.
// defaultFile is the manifest used when --file is not given; empty means discover.
func New(a Application, defaultFile string) *CLI {
	rootCmd := &cobra.Command{
		Use:           "recipe",
		Short:         "Read and check dependency manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.manifestFile, "file", "f", defaultFile,
		"Manifest to read (default: discover recipe.yaml, recipe.hcl or conanfile.txt)")

	rootCmd.AddCommand(c.newRequirementsCmd())
	rootCmd.AddCommand(c.newBuildRequirementsCmd())
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newGeneratorsCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// readOptions selects the --file manifest, or discovery from the working directory.
func (c *CLI) readOptions() (app.ReadOptions, error) {
	if c.manifestFile != "" {
		return app.ReadOptions{Path: c.manifestFile}, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return app.ReadOptions{}, err
	}
	return app.ReadOptions{Dir: cwd}, nil
}

// read loads the selected manifest.
func (c *CLI) read(cmd *cobra.Command) (*app.Inspection, error) {
	opts, err := c.readOptions()
	if err != nil {
		return nil, err
	}
	return c.app.Read(cmd.Context(), opts)
}
