package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasktree/tasktree/internal/tui/components"
	"github.com/tasktree/tasktree/internal/tui/msgs"
	"github.com/tasktree/tasktree/internal/tui/styles"
)

// reportWidth fits one 62-column row plus the scrollbar.
const reportWidth = 64

// ReportModel shows one rendered report. Arrow and page keys scroll it;
// any other key goes back to the menu.
type ReportModel struct {
	title  string
	body   string
	rows   components.ScrollViewport
	width  int
	height int
}

// NewReportModel creates a report view. body holds the header and rows
// already formatted.
func NewReportModel(title, body string) ReportModel {
	rows := components.NewScrollViewport(reportWidth, 1)
	rows.SetLines(strings.Split(body, "\n"))
	return ReportModel{title: title, body: body, rows: rows}
}

// Init implements tea.Model.
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReportModel) Update(msg tea.Msg) (ReportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.rows, cmd = m.rows.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "down", "k", "j", "pgup", "pgdown":
			var cmd tea.Cmd
			m.rows, cmd = m.rows.Update(msg)
			return m, cmd
		}
		return m, func() tea.Msg { return msgs.GoToHomeMsg{} }
	}
	return m, nil
}

// View implements tea.Model.
func (m ReportModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.TitleStyle.Render(m.title)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.TableStyle.Render(m.rows.View())))
	b.WriteString("\n\n")
	b.WriteString(components.NewStatusBar().Render(m.width, []string{"↑↓ Scroll", "Any key Back"}))
	return b.String()
}

// SetSize updates the model dimensions. The table gets whatever height the
// title, border and status bar leave.
func (m *ReportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.rows.SetSize(reportWidth, max(height-8, 3))
}

// Title returns the report title.
func (m ReportModel) Title() string {
	return m.title
}

// Body returns the rendered report text.
func (m ReportModel) Body() string {
	return m.body
}
