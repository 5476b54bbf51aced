package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Meter renders the share of completed tasks like: ■■■■□□□□ 2/4 completed
type Meter struct {
	Completed int
	Total     int
	Width     int // character width of the bar portion
}

// NewMeter creates a new Meter instance.
func NewMeter(completed, total, width int) Meter {
	return Meter{
		Completed: completed,
		Total:     total,
		Width:     width,
	}
}

// View returns the rendered meter. An empty tree renders "no tasks".
func (m Meter) View() string {
	if m.Total <= 0 {
		return "no tasks"
	}

	completed := min(max(m.Completed, 0), m.Total)
	label := fmt.Sprintf("%d/%d completed", completed, m.Total)
	if m.Width <= 0 {
		return label
	}

	filled := (completed * m.Width) / m.Total
	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, m.Width-filled)
	return bar + " " + label
}
