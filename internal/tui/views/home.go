package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasktree/tasktree/internal/tui/components"
	"github.com/tasktree/tasktree/internal/tui/msgs"
	"github.com/tasktree/tasktree/internal/tui/styles"
)

// MenuItem represents a menu option in the home view.
type MenuItem struct {
	Label       string
	Action      msgs.Action
	Description string
}

// MenuSection represents a group of related menu items.
type MenuSection struct {
	Title string
	Items []MenuItem
}

// HomeModel is the model for the home view landing screen.
type HomeModel struct {
	sections []MenuSection
	cursor   int
	width    int
	height   int

	// Line shown under the menu, set by the parent after each action
	notice  string
	isError bool

	completed int
	total     int
}

// NewHomeModel creates the home menu.
func NewHomeModel() HomeModel {
	return HomeModel{
		sections: []MenuSection{
			{
				Title: "Tasks",
				Items: []MenuItem{
					{Label: "Add task", Action: msgs.ActionAdd, Description: "Insert a task into the tree"},
					{Label: "Find task", Action: msgs.ActionFind, Description: "Look up a task by id"},
					{Label: "Delete task", Action: msgs.ActionDelete, Description: "Remove a task by id"},
					{Label: "Complete task", Action: msgs.ActionComplete, Description: "Mark a task as completed"},
				},
			},
			{
				Title: "Reports",
				Items: []MenuItem{
					{Label: "Active tasks", Action: msgs.ActionActive, Description: "Ordered by time limit"},
					{Label: "Completed tasks", Action: msgs.ActionCompleted, Description: "Ordered by id"},
					{Label: "All tasks", Action: msgs.ActionList, Description: "Ordered by id"},
				},
			},
			{
				Title: "",
				Items: []MenuItem{
					{Label: "Clear all", Action: msgs.ActionClear},
					{Label: "Save", Action: msgs.ActionSave},
					{Label: "Quit", Action: msgs.ActionQuit},
				},
			},
		},
	}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c":
			return m, actionCmd(msgs.ActionQuit)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.totalMenuItems()-1 {
				m.cursor++
			}
		case "enter":
			return m, actionCmd(m.actionAtCursor())
		default:
			if m.hasAction(msgs.Action(key)) {
				return m, actionCmd(msgs.Action(key))
			}
		}
	}
	return m, nil
}

func actionCmd(a msgs.Action) tea.Cmd {
	return func() tea.Msg { return msgs.ActionMsg{Action: a} }
}

// totalMenuItems returns the total number of menu items across all sections.
func (m HomeModel) totalMenuItems() int {
	total := 0
	for _, section := range m.sections {
		total += len(section.Items)
	}
	return total
}

func (m HomeModel) hasAction(a msgs.Action) bool {
	for _, section := range m.sections {
		for _, item := range section.Items {
			if item.Action == a {
				return true
			}
		}
	}
	return false
}

// actionAtCursor returns the action of the currently selected item.
func (m HomeModel) actionAtCursor() msgs.Action {
	idx := 0
	for _, section := range m.sections {
		for _, item := range section.Items {
			if idx == m.cursor {
				return item.Action
			}
			idx++
		}
	}
	return ""
}

// SetNotice sets the line shown under the menu.
func (m *HomeModel) SetNotice(text string, isError bool) {
	m.notice = text
	m.isError = isError
}

// SetCounts updates the numbers behind the completion meter.
func (m *HomeModel) SetCounts(completed, total int) {
	m.completed = completed
	m.total = total
}

// Notice returns the current notice line.
func (m HomeModel) Notice() string {
	return m.notice
}

// SetSize updates the model dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the current cursor position.
func (m HomeModel) Cursor() int {
	return m.cursor
}

// View implements tea.Model.
func (m HomeModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("T A S K T R E E")
	tagline := styles.SubtleStyle.Render(components.NewMeter(m.completed, m.total, 16).View())

	var menuLines []string
	cursorIdx := 0
	for sectionIdx, section := range m.sections {
		if section.Title != "" {
			menuLines = append(menuLines, styles.SectionStyle.Render(section.Title))
		}

		for _, item := range section.Items {
			mainPart := "[" + string(item.Action) + "] " + item.Label
			var line string
			if cursorIdx == m.cursor {
				line = styles.SelectedStyle.Render(mainPart)
			} else {
				line = styles.SubtleStyle.Render(mainPart)
			}
			if item.Description != "" {
				line += "  " + styles.SubtleStyle.Render(item.Description)
			}
			menuLines = append(menuLines, line)
			cursorIdx++
		}

		if sectionIdx < len(m.sections)-1 {
			menuLines = append(menuLines, "")
		}
	}

	// Title + tagline + spacing + menu, plus the notice block when present
	contentHeight := 2 + 2 + len(menuLines)
	if m.notice != "" {
		contentHeight += 2
	}
	availableHeight := m.height - 1

	topPadding := (availableHeight - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	b.WriteString(strings.Repeat("\n", topPadding))

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tagline))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(menuLines, "\n")))

	if m.notice != "" {
		style := styles.SuccessStyle
		if m.isError {
			style = styles.ErrorStyle
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(m.notice)))
	}

	bottomPadding := availableHeight - topPadding - contentHeight
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	statusItems := []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}
