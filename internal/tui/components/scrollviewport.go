package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ScrollViewport shows a fixed block of lines with a scrollbar on the right.
// It starts at the top; long reports are scrolled with the arrow keys.
type ScrollViewport struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including the scrollbar column
	height   int
}

// NewScrollViewport creates a viewport. width includes 1 column for the
// scrollbar.
func NewScrollViewport(width, height int) ScrollViewport {
	s := ScrollViewport{viewport: viewport.New(0, 0)}
	s.SetSize(width, height)
	return s
}

// SetSize updates the viewport dimensions, keeping the scroll offset valid.
func (s *ScrollViewport) SetSize(width, height int) {
	s.width = max(width, 1)
	s.height = max(height, 1)
	s.viewport.Width = s.width - 1
	s.viewport.Height = s.height
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetLines replaces the content and scrolls back to the top.
func (s *ScrollViewport) SetLines(lines []string) {
	s.lines = append([]string(nil), lines...)
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.GotoTop()
}

// Update scrolls on up/down, page and mouse wheel input.
func (s ScrollViewport) Update(msg tea.Msg) (ScrollViewport, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the visible lines padded to the content width, followed by
// the scrollbar column.
func (s ScrollViewport) View() string {
	contentLines := strings.Split(s.viewport.View(), "\n")
	scrollbarLines := strings.Split(RenderScrollbar(s.height, len(s.lines), s.viewport.YOffset), "\n")
	contentWidth := s.width - 1

	var b strings.Builder
	for i := 0; i < s.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		b.WriteString(cl)
		if padding := contentWidth - utf8.RuneCountInString(cl); padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		if i < len(scrollbarLines) {
			b.WriteString(scrollbarLines[i])
		}
	}
	return b.String()
}

// YOffset returns the index of the first visible line.
func (s ScrollViewport) YOffset() int {
	return s.viewport.YOffset
}

// AtBottom reports whether the last line is visible.
func (s ScrollViewport) AtBottom() bool {
	return s.viewport.AtBottom()
}
