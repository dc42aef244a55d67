package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dotenv-linter/dotenv-linter/internal/lint"
)

// newCompareCommand creates the compare subcommand. Comparison is not
// a rule-based scan, so it takes only input files plus --no-color and
// --quiet: no exclude, skip or recursive flags.
func newCompareCommand(c *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "compare <files>...",
		Aliases:       []string{"c"},
		Short:         "Compares if files have the same keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return &UsageError{
					Command: cmd,
					Err:     fmt.Errorf("requires at least 2 files to compare, received %d", len(args)),
				}
			}
			return nil
		},
		RunE: c.runCompareE,
	}
	cmd.Flags().Bool("no-color", false, "Turns off the colored output")
	cmd.Flags().BoolP("quiet", "q", false, "Doesn't display additional information")
	return cmd
}

// runCompareE handles the compare subcommand execution. The no-color
// flag is re-applied here from the subcommand's own parse: compare may
// be invoked with flags distinct from the root's.
func (c *CLI) runCompareE(cmd *cobra.Command, args []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	applyOutputPolicy(noColor)

	quiet, _ := cmd.Flags().GetBool("quiet")
	opts := &lint.Options{Inputs: args, Quiet: quiet}

	slog.Debug("compare started", "inputs", opts.Inputs)

	warnings, err := c.engine(cmd).Compare(opts)
	if err != nil {
		return err
	}
	if len(warnings) > 0 {
		return &WarningsError{Count: len(warnings)}
	}
	return nil
}
