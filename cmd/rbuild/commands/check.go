package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rbuild/internal/app"
	"go.trai.ch/rbuild/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [module]",
		Short: "Report which module outputs are older than their sources",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.CheckOptions{Options: globalOptions(cmd)}
			if len(args) == 1 {
				opts.Module = args[0]
			}
			opts.File, _ = cmd.Flags().GetString("file")
			explain, _ := cmd.Flags().GetBool("explain")

			verdicts, err := c.app.Check(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printVerdicts(cmd, verdicts, explain)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Check a single declared file of the module")
	cmd.Flags().BoolP("explain", "e", false, "Print why each module is stale or up to date")
	return cmd
}

func printVerdicts(cmd *cobra.Command, verdicts []domain.Verdict, explain bool) {
	out := cmd.OutOrStdout()
	for _, v := range verdicts {
		name := v.Module
		if v.File != "" {
			name += ":" + v.File
		}
		_, _ = fmt.Fprintf(out, "%-10s %s\n", v.Status(), name)
		if explain {
			_, _ = fmt.Fprintf(out, "           %s\n", v.Reason())
		}
	}
}
