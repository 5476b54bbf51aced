package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/report"
)

var findCmd = &cobra.Command{
	Use:   "find <id>",
	Short: "Look up a task by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withWorkspace(func(ws *workspace) error {
		out := cmd.OutOrStdout()
		tk, ok := ws.tree.Find(id)
		if !ok {
			fmt.Fprintf(out, "Task %d not found.\n", id)
			return nil
		}
		fmt.Fprintln(out, report.Header())
		fmt.Fprintln(out, report.FormatRow(tk))
		return nil
	})
}
