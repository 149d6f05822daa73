package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/ui/report"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the manifest changed since the last status check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.readOptions()
			if err != nil {
				return err
			}

			result, err := c.app.Status(cmd.Context(), opts)
			if err != nil {
				return err
			}

			report.NewPrinter(cmd.OutOrStdout()).Status(result.Path, result.Fingerprint, result.Changed)
			return nil
		},
	}
}
