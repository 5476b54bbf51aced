package tui

import (
	"github.com/tasktree/tasktree/internal/store"
	"github.com/tasktree/tasktree/internal/task"
)

// Options configures TUI startup behavior.
type Options struct {
	// Tree is edited in place. The caller keeps ownership.
	Tree *task.Tree
	// Save persists Tree. It runs on [s] and on quit when there are
	// unsaved changes.
	Save func() error
	// Journal records each change. May be nil.
	Journal *store.Journal
}
