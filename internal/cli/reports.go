package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/report"
	"github.com/tasktree/tasktree/internal/task"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "List active tasks by time limit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd.OutOrStdout(), report.Active, "No active tasks.")
	},
}

var completedCmd = &cobra.Command{
	Use:   "completed",
	Short: "List completed tasks by id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd.OutOrStdout(), report.Completed, "No completed tasks.")
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every task by id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd.OutOrStdout(), report.All, "No tasks.")
	},
}

type reportFunc func(w io.Writer, tree *task.Tree) (int, error)

// printReport renders rows into a buffer first so the header is only printed
// when there is at least one row.
func printReport(out io.Writer, fn reportFunc, empty string) error {
	return withWorkspace(func(ws *workspace) error {
		var rows bytes.Buffer
		n, err := fn(&rows, ws.tree)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		if n == 0 {
			fmt.Fprintln(out, empty)
			return nil
		}

		fmt.Fprintln(out, report.Separator())
		fmt.Fprintln(out, report.Header())
		fmt.Fprintln(out, report.Separator())
		if _, err := rows.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintln(out, report.Separator())
		return nil
	})
}
