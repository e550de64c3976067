package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Aliases: []string{"default", "dev"},
		Short:   "Build once, then serve and rebuild on changes",
		Long: "Run the initial build, start the live reload server and rebuild\n" +
			"whenever a watched source changes. Stops on interrupt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context())
		},
	}
}
