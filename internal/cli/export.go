package cli

import (
	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/store"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every task to stdout",
	Long: `Writes a snapshot of the tree to stdout in pre-order, the same order the
data file uses, so importing it by sequential insert rebuilds the same tree.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json or yaml)")
}

func runExport(cmd *cobra.Command, args []string) error {
	return withWorkspace(func(ws *workspace) error {
		return store.Export(cmd.OutOrStdout(), ws.tree, exportFormat)
	})
}
