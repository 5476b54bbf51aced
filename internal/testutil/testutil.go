// Package testutil provides testing utilities for the tasktree project.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/tasktree/tasktree/internal/task"
)

// NewTree inserts copies of tasks, in order, into a fresh tree.
func NewTree(t testing.TB, tasks ...task.Task) *task.Tree {
	t.Helper()

	tree := task.NewTree()
	for i := range tasks {
		tk := tasks[i]
		if err := tree.Insert(&tk); err != nil {
			t.Fatalf("failed to insert task %d: %v", tk.ID, err)
		}
	}
	return tree
}

// Active and Completed are shorthands for task literals in test tables.
func Active(id int, description string, timeLimit int) task.Task {
	return task.Task{ID: id, Description: description, TimeLimit: timeLimit, Status: task.StatusActive}
}

func Completed(id int, description string, timeLimit int) task.Task {
	return task.Task{ID: id, Description: description, TimeLimit: timeLimit, Status: task.StatusCompleted}
}

// RowIDs extracts the id column from report rows, skipping anything that is
// not a data row (headers, separators, messages).
func RowIDs(t testing.TB, output string) []int {
	t.Helper()

	var ids []int
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "| ") {
			continue
		}
		cells := strings.Split(line, "|")
		if len(cells) < 2 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(cells[1]))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// RowTimeLimits extracts the time limit column from report rows.
func RowTimeLimits(t testing.TB, output string) []int {
	t.Helper()

	var limits []int
	for _, line := range strings.Split(output, "\n") {
		cells := strings.Split(line, "|")
		if len(cells) < 5 {
			continue
		}
		limit, err := strconv.Atoi(strings.TrimSpace(cells[3]))
		if err != nil {
			continue
		}
		limits = append(limits, limit)
	}
	return limits
}

// SetupTestDir creates a temp directory, resolves symlinks (for macOS),
// changes to it, and registers cleanup to restore the original working directory.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	return tmpDir
}
