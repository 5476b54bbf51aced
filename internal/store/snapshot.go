// Package store persists a task tree to disk and guards the data file
// against concurrent writers.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tasktree/tasktree/internal/task"
	"gopkg.in/yaml.v3"
)

const snapshotVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrUnknownFormat      = errors.New("unknown export format")
)

// Snapshot is the on-disk form of a tree. Tasks are listed in pre-order so
// that inserting them back one by one rebuilds the same tree shape.
type Snapshot struct {
	Version int          `json:"version" yaml:"version"`
	Tasks   []*task.Task `json:"tasks" yaml:"tasks"`
}

// NewSnapshot captures the tasks of tree.
func NewSnapshot(tree *task.Tree) *Snapshot {
	s := &Snapshot{
		Version: snapshotVersion,
		Tasks:   make([]*task.Task, 0, tree.Len()),
	}
	tree.PreOrder(func(t *task.Task) {
		s.Tasks = append(s.Tasks, t)
	})
	return s
}

// Tree rebuilds a tree from the snapshot. Every task is validated again.
func (s *Snapshot) Tree(opts ...task.Option) (*task.Tree, error) {
	if s.Version > snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}

	tree := task.NewTree(opts...)
	for i, t := range s.Tasks {
		if t == nil {
			return nil, fmt.Errorf("task #%d is empty", i+1)
		}
		tk, err := task.New(t.ID, t.Description, t.TimeLimit, t.Status)
		if err != nil {
			return nil, fmt.Errorf("invalid task %d: %w", t.ID, err)
		}
		if err := tree.Insert(tk); err != nil {
			return nil, fmt.Errorf("failed to insert task %d: %w", t.ID, err)
		}
	}
	return tree, nil
}

// Load reads the data file at path. A missing file yields an empty tree.
func Load(path string, opts ...task.Option) (*task.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return task.NewTree(opts...), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s.Tree(opts...)
}

// Save atomically writes tree to path.
// Uses a temp file + rename to ensure atomic writes.
func Save(path string, tree *task.Tree) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(NewSnapshot(tree), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Export writes a snapshot of tree to w as "json" or "yaml".
func Export(w io.Writer, tree *task.Tree, format string) error {
	s := NewSnapshot(tree)
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
