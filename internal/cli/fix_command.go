package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// newFixCommand creates the fix subcommand. It shares the check flag
// set and adds --no-backup.
func newFixCommand(c *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fix [files]...",
		Aliases:       []string{"f"},
		Short:         "Automatically fixes warnings",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runFixE,
	}
	registerCommonFlags(cmd.Flags())
	cmd.Flags().Bool("no-backup", false, "Prevents backing up .env files")
	return cmd
}

// runFixE handles the fix subcommand execution. A fix run that returns
// without failing is always a success, regardless of how many warnings
// it found and fixed.
func (c *CLI) runFixE(cmd *cobra.Command, args []string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	applyOutputPolicy(noColor)

	opts := c.buildOptions(cmd, args)
	opts.NoBackup, _ = cmd.Flags().GetBool("no-backup")

	slog.Debug("fix started", "inputs", opts.Inputs, "no_backup", opts.NoBackup)

	return c.engine(cmd).Fix(opts)
}
