package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/ui/report"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Check that manifests are well formed",
		Long: "Check that manifests are well formed.\n" +
			"Without paths the manifest selected by --file, or discovered, is checked.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := report.NewPrinter(cmd.OutOrStdout())

			if len(args) == 0 {
				inspection, err := c.read(cmd)
				if err != nil {
					return err
				}
				printer.Validation(inspection.Path, nil)
				return nil
			}

			results, err := c.app.Validate(cmd.Context(), args)
			for _, r := range results {
				printer.Validation(r.Path, r.Err)
			}
			return err
		},
	}
}
