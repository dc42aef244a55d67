package cli

import (
	"github.com/spf13/cobra"
)

// newListCommand creates the list subcommand. It prints the available
// check names, one per line, in their stable order, and always
// succeeds. No files are touched.
func newListCommand(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Aliases:       []string{"l"},
		Short:         "Shows list of available checks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range c.engine(cmd).CheckNames() {
				cmd.Println(name)
			}
			return nil
		},
	}
}
