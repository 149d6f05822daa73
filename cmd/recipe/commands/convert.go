package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the manifest in another format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			to, _ := cmd.Flags().GetString("to")
			format, ok := domain.ParseFormat(to)
			if !ok {
				return zerr.With(domain.ErrUnsupportedFormat, "format", to)
			}

			opts, err := c.readOptions()
			if err != nil {
				return err
			}
			return c.app.Convert(cmd.Context(), opts, cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().String("to", string(domain.FormatYAML), "Target format: yaml, hcl, or txt")
	return cmd
}
