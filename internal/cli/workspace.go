package cli

import (
	"fmt"
	"strconv"

	"github.com/tasktree/tasktree/internal/config"
	"github.com/tasktree/tasktree/internal/store"
	"github.com/tasktree/tasktree/internal/task"
	"go.uber.org/zap"
)

// workspace is a loaded tree plus the lock that keeps other processes out
// of its data file until close.
type workspace struct {
	path    string
	tree    *task.Tree
	journal *store.Journal
	lock    *store.Lock
}

func openWorkspace(c *config.Config) (*workspace, error) {
	lock := store.NewLock(c.DataFile)
	if err := lock.Acquire(); err != nil {
		return nil, err
	}

	tree, err := store.Load(c.DataFile, treeOptions(c)...)
	if err != nil {
		lock.Release()
		return nil, err
	}

	ws := &workspace{
		path: c.DataFile,
		tree: tree,
		lock: lock,
	}
	if c.Journal {
		ws.journal = store.NewJournal(c.DataFile)
	}

	log.Debug("tasks loaded", zap.String("file", c.DataFile), zap.Int("count", tree.Len()))
	return ws, nil
}

func treeOptions(c *config.Config) []task.Option {
	if c.AllowDuplicates {
		return []task.Option{task.WithDuplicates()}
	}
	return nil
}

func (w *workspace) save() error {
	if err := store.Save(w.path, w.tree); err != nil {
		return err
	}
	log.Debug("tasks saved", zap.String("file", w.path), zap.Int("count", w.tree.Len()))
	return nil
}

// record reports a journal write failure without failing the command; the
// data file has already been saved at that point.
func (w *workspace) record(err error) {
	if err != nil {
		log.Warn("failed to write journal", zap.Error(err))
	}
}

func (w *workspace) close() {
	if err := w.lock.Release(); err != nil {
		log.Warn("failed to release lock", zap.String("lock", w.lock.Path()), zap.Error(err))
	}
}

// withWorkspace opens the configured data file, runs fn and releases the lock.
func withWorkspace(fn func(ws *workspace) error) error {
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.close()
	return fn(ws)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be an integer", arg)
	}
	return id, nil
}
