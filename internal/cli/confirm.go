package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ohare93/keyprompt/internal/terminal"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm <question>",
	Short: "Ask a yes/no question",
	Long: `Ask a yes/no question and exit with status 0 on yes, 1 on no.

Useful from shell scripts:
  keyprompt confirm "Overwrite existing file?" && cp src dst`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, err := terminal.Confirm(args[0])
		if err != nil {
			return err
		}
		if !yes {
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "yes")
		return nil
	},
}
