package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tasktree/tasktree/internal/report"
	"github.com/tasktree/tasktree/internal/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tree size and shape",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

type treeStats struct {
	Total     int
	Active    int
	Completed int
	Height    int
	MinID     int
	HasMin    bool
}

func collectStats(tree *task.Tree) treeStats {
	active := report.CollectActive(tree)
	defer active.Release()

	s := treeStats{
		Total:  tree.Len(),
		Active: active.Len(),
		Height: tree.Height(),
	}
	s.Completed = s.Total - s.Active
	if tk, ok := tree.Min(); ok {
		s.MinID, s.HasMin = tk.ID, true
	}
	return s
}

func runStats(cmd *cobra.Command, args []string) error {
	return withWorkspace(func(ws *workspace) error {
		s := collectStats(ws.tree)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "FILE\t%s\n", ws.path)
		fmt.Fprintf(w, "TASKS\t%d\n", s.Total)
		fmt.Fprintf(w, "ACTIVE\t%d\n", s.Active)
		fmt.Fprintf(w, "COMPLETED\t%d\n", s.Completed)
		fmt.Fprintf(w, "HEIGHT\t%d\n", s.Height)
		if s.HasMin {
			fmt.Fprintf(w, "MIN ID\t%d\n", s.MinID)
		} else {
			fmt.Fprintln(w, "MIN ID\t-")
		}
		return w.Flush()
	})
}
