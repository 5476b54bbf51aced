package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/task"
)

var addCompleted bool

var addCmd = &cobra.Command{
	Use:   "add <id> <description> <time-limit>",
	Short: "Insert a task into the tree",
	Long: `Insert a task keyed by id. The description holds at most 20 characters.
New tasks are active unless --completed is given.`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addCompleted, "completed", false, "Insert the task as completed")
}

func runAdd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	timeLimit, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid time limit %q: must be an integer", args[2])
	}

	status := task.StatusActive
	if addCompleted {
		status = task.StatusCompleted
	}
	tk, err := task.New(id, args[1], timeLimit, status)
	if err != nil {
		return err
	}

	return withWorkspace(func(ws *workspace) error {
		if err := ws.tree.Insert(tk); err != nil {
			return fmt.Errorf("failed to add task %d: %w", id, err)
		}
		if err := ws.save(); err != nil {
			return err
		}
		ws.record(ws.journal.TaskInserted(tk))

		fmt.Fprintf(cmd.OutOrStdout(), "Task %d added.\n", id)
		return nil
	})
}
