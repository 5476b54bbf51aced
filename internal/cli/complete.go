package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/task"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
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
		if tk.Status == task.StatusCompleted {
			fmt.Fprintf(out, "Task %d is already completed.\n", id)
			return nil
		}

		ws.tree.SetStatus(id, task.StatusCompleted)
		if err := ws.save(); err != nil {
			return err
		}
		ws.record(ws.journal.TaskCompleted(id))

		fmt.Fprintf(out, "Task %d completed.\n", id)
		return nil
	})
}
