package report

import (
	"fmt"
	"io"

	"github.com/tasktree/tasktree/internal/task"
)

// Completed writes one row per completed task, in ascending id order, and
// returns the number of rows written.
func Completed(w io.Writer, tree *task.Tree) (int, error) {
	var (
		rows int
		err  error
	)
	tree.ForEachCompletedInOrder(func(t *task.Task) {
		if err != nil {
			return
		}
		if _, err = fmt.Fprintln(w, FormatRow(t)); err == nil {
			rows++
		}
	})
	return rows, err
}

// All writes one row per task, in ascending id order.
func All(w io.Writer, tree *task.Tree) (int, error) {
	var (
		rows int
		err  error
	)
	tree.InOrder(func(t *task.Task) {
		if err != nil {
			return
		}
		if _, err = fmt.Fprintln(w, FormatRow(t)); err == nil {
			rows++
		}
	})
	return rows, err
}
