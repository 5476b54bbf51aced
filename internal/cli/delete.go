package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a task by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withWorkspace(func(ws *workspace) error {
		out := cmd.OutOrStdout()
		if !ws.tree.Delete(id) {
			fmt.Fprintf(out, "Task %d not found.\n", id)
			return nil
		}
		if err := ws.save(); err != nil {
			return err
		}
		ws.record(ws.journal.TaskDeleted(id))

		fmt.Fprintf(out, "Task %d deleted.\n", id)
		return nil
	})
}
