package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/ui/report"
	"go.trai.ch/zerr"
)

func (c *CLI) newRequirementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "requirements [name]",
		Aliases: []string{"requires"},
		Short:   "List compile and link time requirements",
		Long: "List compile and link time requirements.\n" +
			"With a name only that dependency is printed, and a missing one is an error.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspection, err := c.read(cmd)
			if err != nil {
				return err
			}
			refs := inspection.Manifest.ListRequirements()
			if len(args) == 1 {
				ref, ok := inspection.Manifest.Requirement(args[0])
				if !ok {
					return notDeclared(domain.ErrDependencyNotDeclared, "requires", args[0], inspection.Path)
				}
				refs = []domain.Reference{ref}
			}
			return report.NewPrinter(cmd.OutOrStdout()).References(refs)
		},
	}
}

func (c *CLI) newBuildRequirementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "build-requirements [name]",
		Aliases: []string{"tool-requirements"},
		Short:   "List tool requirements needed only while building",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspection, err := c.read(cmd)
			if err != nil {
				return err
			}
			refs := inspection.Manifest.ListBuildRequirements()
			if len(args) == 1 {
				ref, ok := inspection.Manifest.BuildRequirement(args[0])
				if !ok {
					return notDeclared(domain.ErrDependencyNotDeclared, "tool_requires", args[0], inspection.Path)
				}
				refs = []domain.Reference{ref}
			}
			return report.NewPrinter(cmd.OutOrStdout()).References(refs)
		},
	}
}

func (c *CLI) newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings [axis]",
		Short: "List the build settings dependency resolution varies on",
		Long: "List the build settings dependency resolution varies on.\n" +
			"With an axis the command succeeds only if the manifest declares it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspection, err := c.read(cmd)
			if err != nil {
				return err
			}
			settings := inspection.Manifest.ListSettings()
			if len(args) == 1 {
				if !inspection.Manifest.HasSetting(args[0]) {
					return notDeclared(domain.ErrSettingNotDeclared, "settings", args[0], inspection.Path)
				}
				settings = []string{args[0]}
			}
			return report.NewPrinter(cmd.OutOrStdout()).Lines(settings)
		},
	}
}

func (c *CLI) newGeneratorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List the generators to run after resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inspection, err := c.read(cmd)
			if err != nil {
				return err
			}
			return report.NewPrinter(cmd.OutOrStdout()).Lines(inspection.Manifest.ListGenerators())
		},
	}
}

func notDeclared(sentinel error, field, entry, path string) error {
	err := zerr.With(sentinel, "field", field)
	err = zerr.With(err, "entry", entry)
	return zerr.With(err, "path", path)
}
