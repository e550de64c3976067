package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the available tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := c.app.Tasks()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range tasks {
				desc := t.Description
				if len(t.Children) > 0 {
					desc = strings.TrimSpace(desc + " (" + t.Kind + ": " + strings.Join(t.Children, ", ") + ")")
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\n", t.Name, desc)
			}
			return w.Flush()
		},
	}
}
