package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rbuild/internal/app"
	"go.trai.ch/rbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps [module]",
		Short: "Print the files each declared source transitively includes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.DepsOptions{Options: globalOptions(cmd)}
			if len(args) == 1 {
				opts.Module = args[0]
			}
			opts.Write, _ = cmd.Flags().GetBool("write")
			opts.Verify, _ = cmd.Flags().GetBool("verify")

			deps, err := c.app.Deps(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			changed := 0
			for _, d := range deps {
				_, _ = fmt.Fprintf(out, "%s: %s\n", d.File, d.Text)
				if d.Changed {
					changed++
				}
			}
			switch {
			case opts.Write:
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d fragments updated\n", changed, len(deps))
			case opts.Verify:
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d fragments out of date\n", changed, len(deps))
				if changed > 0 {
					return zerr.With(zerr.Wrap(domain.ErrStaleFragments, "verify failed"), "count", changed)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Store each fragment under .rbuild/deps")
	cmd.Flags().Bool("verify", false, "Fail if a stored fragment is missing or out of date")
	cmd.MarkFlagsMutuallyExclusive("write", "verify")
	return cmd
}
