package task

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxDescriptionLen is the longest description a task may carry, in characters.
const MaxDescriptionLen = 20

// Status is the completion state of a task.
type Status int

// Task status constants
const (
	StatusActive Status = iota
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Label returns the status column text used in report rows.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Ativa"
	case StatusCompleted:
		return "Concluida"
	default:
		return "?"
	}
}

// ParseStatus accepts either the status name or its report label, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "ativa":
		return StatusActive, nil
	case "completed", "concluida":
		return StatusCompleted, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if s != StatusActive && s != StatusCompleted {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task is a unit of work indexed by the tree. ID is the search key and must not
// change while the task is stored in a Tree.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	TimeLimit   int    `json:"timeLimit" yaml:"timeLimit"`
	Status      Status `json:"status" yaml:"status"`
}

// New validates its arguments and returns a task ready for insertion.
func New(id int, description string, timeLimit int, status Status) (*Task, error) {
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLen {
		return nil, fmt.Errorf("%w: got %d", ErrDescriptionTooLong, n)
	}
	if status != StatusActive && status != StatusCompleted {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(status))
	}
	return &Task{
		ID:          id,
		Description: description,
		TimeLimit:   timeLimit,
		Status:      status,
	}, nil
}
