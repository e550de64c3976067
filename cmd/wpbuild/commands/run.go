package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run tasks in the given order",
		Long: "Run tasks in the given order and stop at the first failure.\n" +
			"Use the tasks command to list the available tasks.\n\n" +
			"The images task re-encodes PNG and GIF files losslessly and minifies SVG.\n" +
			"JPEG files are not re-encoded: their metadata segments are stripped and\n" +
			"the image data is kept byte for byte.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Run(cmd.Context(), args)
		},
	}
}
