package cli

import (
	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/tui"
)

// runMenu opens the interactive menu on the configured data file. The lock
// is held for the whole session.
func runMenu(cmd *cobra.Command, args []string) error {
	return withWorkspace(func(ws *workspace) error {
		return tui.Run(tui.Options{
			Tree:    ws.tree,
			Save:    ws.save,
			Journal: ws.journal,
		})
	})
}
