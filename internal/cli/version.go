package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tasktree %s\n", version.String())
	},
}
