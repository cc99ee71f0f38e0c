package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rbuild/internal/app"
)

func (c *CLI) newRebuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Run the command of every stale module and the modules depending on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			verdicts, err := c.app.Rebuild(cmd.Context(), app.RebuildOptions{
				Options: globalOptions(cmd),
				Jobs:    jobs,
			})

			statuses := c.app.Statuses()
			out := cmd.OutOrStdout()
			for _, v := range verdicts {
				if status, ok := statuses[v.Module]; ok {
					_, _ = fmt.Fprintf(out, "%-10s %s\n", status, v.Module)
				}
			}
			return err
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of commands to run in parallel (default one per CPU)")
	return cmd
}
