// Package commands implements the CLI commands for the rbuild dependency checker.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rbuild/internal/app"
	"go.trai.ch/rbuild/internal/build"
	"go.trai.ch/rbuild/internal/core/domain"
)

// CLI represents the command line interface for rbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, opts app.CheckOptions) ([]domain.Verdict, error)
	Deps(ctx context.Context, opts app.DepsOptions) ([]app.FileDeps, error)
	Rebuild(ctx context.Context, opts app.RebuildOptions) ([]domain.Verdict, error)
	Statuses() map[string]domain.VertexStatus
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rbuild",
		Short:         "Automatic include dependency checking for module builds",
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

	rootCmd.PersistentFlags().StringP("project", "p", ".", "Project file, or a directory to search for "+domain.ProjectFileName)
	rootCmd.PersistentFlags().BoolP("no-cache", "n", false, "Rescan every file instead of using the scan cache")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newRebuildCmd())
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

func globalOptions(cmd *cobra.Command) app.Options {
	project, _ := cmd.Flags().GetString("project")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	return app.Options{Project: project, NoCache: noCache}
}
