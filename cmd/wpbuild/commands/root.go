// Package commands implements the CLI commands of wpbuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wpbuild/internal/app"
	"go.trai.ch/wpbuild/internal/build"
	"go.trai.ch/wpbuild/internal/core/domain"
)

// CLI represents the command line interface for wpbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions) error
	Run(ctx context.Context, names []string) error
	Watch(ctx context.Context) error
	Tasks() ([]app.TaskInfo, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wpbuild",
		Short:         "Build and live reload the assets of a WordPress theme or plugin",
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

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Configuration file, relative to the project directory")
	rootCmd.PersistentFlags().StringP("dir", "C", "", "Project directory (defaults to the working directory)")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON lines")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		configFile, _ := cmd.Flags().GetString("config")
		dir, _ := cmd.Flags().GetString("dir")
		jsonLogs, _ := cmd.Flags().GetBool("json")
		return c.app.Configure(app.GlobalOptions{Dir: dir, Config: configFile, JSON: jsonLogs})
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newTasksCmd())
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
