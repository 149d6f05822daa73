package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/ui/report"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every section of the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output")
			mode, err := report.ParseMode(outputMode)
			if err != nil {
				return err
			}

			inspection, err := c.read(cmd)
			if err != nil {
				return err
			}
			return report.NewPrinter(cmd.OutOrStdout()).Manifest(inspection.Path, inspection.Manifest, mode)
		},
	}
	cmd.Flags().StringP("output", "o", string(report.ModeText), "Output mode: text, json, or yaml")
	return cmd
}
