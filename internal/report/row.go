// Package report renders task rows and produces the completed and active task reports.
package report

import (
	"fmt"
	"strings"

	"github.com/tasktree/tasktree/internal/task"
)

const rowFormat = "| %-5d | %-20s | %-16d | %-9s|"

// FormatRow renders a task as one fixed-width table row, without a newline.
func FormatRow(t *task.Task) string {
	return fmt.Sprintf(rowFormat, t.ID, t.Description, t.TimeLimit, t.Status.Label())
}

// Header returns the column titles aligned with FormatRow.
func Header() string {
	return fmt.Sprintf("| %-5s | %-20s | %-16s | %-9s|", "ID", "Descricao", "Tempo limite", "Status")
}

// Separator returns a horizontal rule matching the row width.
func Separator() string {
	return "+" + strings.Repeat("-", 7) +
		"+" + strings.Repeat("-", 22) +
		"+" + strings.Repeat("-", 18) +
		"+" + strings.Repeat("-", 10) + "+"
}
