package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/tasktree/tasktree/internal/task"
)

const journalFileName = "journal.log"

// Event type constants for the journal.
const (
	EventTaskInserted  = "task_inserted"
	EventTaskDeleted   = "task_deleted"
	EventTaskCompleted = "task_completed"
	EventTreeCleared   = "tree_cleared"
)

// JournalEvent is a single journal entry.
type JournalEvent struct {
	Timestamp time.Time              `json:"timestamp"`
	Event     string                 `json:"event"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Journal appends tree changes to a JSON Lines file next to the data file.
// A nil *Journal discards everything.
type Journal struct {
	path string
}

// NewJournal creates a journal for the given data file.
func NewJournal(dataFile string) *Journal {
	return &Journal{
		path: filepath.Join(filepath.Dir(dataFile), journalFileName),
	}
}

// Path returns the journal file location.
func (j *Journal) Path() string {
	return j.path
}

// Log appends an event to the journal file.
func (j *Journal) Log(event string, data map[string]interface{}) error {
	if j == nil {
		return nil
	}

	entry := JournalEvent{
		Timestamp: time.Now(),
		Event:     event,
		Data:      data,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(line)
	return err
}

// TaskInserted logs a task_inserted event.
func (j *Journal) TaskInserted(t *task.Task) error {
	return j.Log(EventTaskInserted, map[string]interface{}{
		"task_id":     t.ID,
		"description": t.Description,
		"time_limit":  t.TimeLimit,
		"status":      t.Status.String(),
	})
}

// TaskDeleted logs a task_deleted event.
func (j *Journal) TaskDeleted(id int) error {
	return j.Log(EventTaskDeleted, map[string]interface{}{
		"task_id": id,
	})
}

// TaskCompleted logs a task_completed event.
func (j *Journal) TaskCompleted(id int) error {
	return j.Log(EventTaskCompleted, map[string]interface{}{
		"task_id": id,
	})
}

// TreeCleared logs a tree_cleared event with the number of tasks dropped.
func (j *Journal) TreeCleared(count int) error {
	return j.Log(EventTreeCleared, map[string]interface{}{
		"count": count,
	})
}
