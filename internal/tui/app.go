// Package tui implements the interactive task menu.
package tui

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasktree/tasktree/internal/report"
	"github.com/tasktree/tasktree/internal/task"
	"github.com/tasktree/tasktree/internal/tui/msgs"
	"github.com/tasktree/tasktree/internal/tui/styles"
	"github.com/tasktree/tasktree/internal/tui/views"
)

// Minimum terminal dimensions for proper display.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewPrompt
	ViewReport
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	home   views.HomeModel
	prompt views.PromptModel
	report views.ReportModel

	opts  Options
	dirty bool
	err   error
}

// Run starts the TUI application and returns once the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// NewModel creates the model showing the home menu.
func NewModel(opts Options) Model {
	if opts.Tree == nil {
		opts.Tree = task.NewTree()
	}
	m := Model{
		currentView: ViewHome,
		home:        views.NewHomeModel(),
		opts:        opts,
	}
	m.refreshCounts()
	return m
}

// refreshCounts feeds the completion meter after the tree changes.
func (m *Model) refreshCounts() {
	completed := 0
	m.opts.Tree.ForEachCompletedInOrder(func(*task.Task) { completed++ })
	m.home.SetCounts(completed, m.opts.Tree.Len())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.SetSize(msg.Width, msg.Height)
		m.prompt.SetSize(msg.Width, msg.Height)
		m.report.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.ActionMsg:
		return m.handleAction(msg.Action)

	case msgs.GoToHomeMsg:
		m.currentView = ViewHome
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.home, cmd = m.home.Update(msg)
	case ViewPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
		switch m.prompt.Result() {
		case views.ResultSubmit:
			return m.submit()
		case views.ResultCancel:
			m.home.SetNotice("", false)
			m.currentView = ViewHome
		}
	case ViewReport:
		m.report, cmd = m.report.Update(msg)
	}
	return m, cmd
}

func (m Model) handleAction(action msgs.Action) (tea.Model, tea.Cmd) {
	switch action {
	case msgs.ActionAdd:
		return m.openPrompt(views.PromptConfig{
			Title:       "Add task",
			Label:       "id;description;time limit[;status]",
			Placeholder: "1;Write report;10",
		}, action)
	case msgs.ActionFind:
		return m.openPrompt(views.PromptConfig{Title: "Find task", Label: "Task id:"}, action)
	case msgs.ActionDelete:
		return m.openPrompt(views.PromptConfig{Title: "Delete task", Label: "Task id:"}, action)
	case msgs.ActionComplete:
		return m.openPrompt(views.PromptConfig{Title: "Complete task", Label: "Task id:"}, action)
	case msgs.ActionClear:
		n := m.opts.Tree.Len()
		if n == 0 {
			m.home.SetNotice("No tasks to clear.", false)
			return m, nil
		}
		return m.openPrompt(views.PromptConfig{
			Title:   "Clear all",
			Label:   fmt.Sprintf("This will delete %d tasks. Continue?", n),
			Confirm: true,
		}, action)

	case msgs.ActionActive:
		return m.showReport("Active tasks", report.Active, "No active tasks.")
	case msgs.ActionCompleted:
		return m.showReport("Completed tasks", report.Completed, "No completed tasks.")
	case msgs.ActionList:
		return m.showReport("All tasks", report.All, "No tasks.")

	case msgs.ActionSave:
		if err := m.save(); err != nil {
			m.home.SetNotice(err.Error(), true)
		} else {
			m.home.SetNotice("Saved.", false)
		}
		return m, nil

	case msgs.ActionQuit:
		if m.dirty {
			m.err = m.save()
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) openPrompt(config views.PromptConfig, action msgs.Action) (tea.Model, tea.Cmd) {
	config.Action = action
	m.prompt = views.NewPromptModel(config)
	m.prompt.SetSize(m.width, m.height)
	m.currentView = ViewPrompt
	return m, m.prompt.Init()
}

func (m Model) showReport(title string, fn func(io.Writer, *task.Tree) (int, error), empty string) (tea.Model, tea.Cmd) {
	var rows bytes.Buffer
	n, err := fn(&rows, m.opts.Tree)
	if err != nil {
		m.home.SetNotice(err.Error(), true)
		return m, nil
	}
	if n == 0 {
		m.home.SetNotice(empty, false)
		return m, nil
	}
	m.report = views.NewReportModel(title, table(rows.String()))
	m.report.SetSize(m.width, m.height)
	m.currentView = ViewReport
	return m, nil
}

func table(rows string) string {
	return report.Header() + "\n" + report.Separator() + "\n" + strings.TrimRight(rows, "\n")
}

// submit applies the prompt's input. Invalid input keeps the prompt open.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.prompt.Value())
	action := m.prompt.Action()

	if action == msgs.ActionAdd {
		tk, err := ParseTask(value)
		if err != nil {
			m.prompt.Reject(err.Error())
			return m, nil
		}
		if err := m.opts.Tree.Insert(tk); err != nil {
			m.prompt.Reject(fmt.Sprintf("task %d: %v", tk.ID, err))
			return m, nil
		}
		m.dirty = true
		m.notify(fmt.Sprintf("Task %d added.", tk.ID), m.opts.Journal.TaskInserted(tk))
		m.currentView = ViewHome
		return m, nil
	}

	if action == msgs.ActionClear {
		n := m.opts.Tree.Len()
		m.opts.Tree.Clear()
		m.dirty = true
		m.notify(fmt.Sprintf("Cleared %d tasks.", n), m.opts.Journal.TreeCleared(n))
		m.currentView = ViewHome
		return m, nil
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		m.prompt.Reject(fmt.Sprintf("invalid task id %q: must be an integer", value))
		return m, nil
	}
	m.currentView = ViewHome

	switch action {
	case msgs.ActionFind:
		tk, ok := m.opts.Tree.Find(id)
		if !ok {
			m.home.SetNotice(fmt.Sprintf("Task %d not found.", id), true)
			return m, nil
		}
		m.report = views.NewReportModel(fmt.Sprintf("Task %d", id), table(report.FormatRow(tk)))
		m.report.SetSize(m.width, m.height)
		m.currentView = ViewReport

	case msgs.ActionDelete:
		if !m.opts.Tree.Delete(id) {
			m.home.SetNotice(fmt.Sprintf("Task %d not found.", id), true)
			return m, nil
		}
		m.dirty = true
		m.notify(fmt.Sprintf("Task %d deleted.", id), m.opts.Journal.TaskDeleted(id))

	case msgs.ActionComplete:
		tk, ok := m.opts.Tree.Find(id)
		switch {
		case !ok:
			m.home.SetNotice(fmt.Sprintf("Task %d not found.", id), true)
		case tk.Status == task.StatusCompleted:
			m.home.SetNotice(fmt.Sprintf("Task %d is already completed.", id), false)
		default:
			m.opts.Tree.SetStatus(id, task.StatusCompleted)
			m.dirty = true
			m.notify(fmt.Sprintf("Task %d completed.", id), m.opts.Journal.TaskCompleted(id))
		}
	}
	return m, nil
}

// notify shows the outcome of a change, or the journal failure if recording
// it did not work.
func (m *Model) notify(text string, journalErr error) {
	m.refreshCounts()
	if journalErr != nil {
		m.home.SetNotice(fmt.Sprintf("%s Failed to write journal: %v", text, journalErr), true)
		return
	}
	m.home.SetNotice(text, false)
}

func (m *Model) save() error {
	if m.opts.Save == nil {
		return nil
	}
	if err := m.opts.Save(); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

// ParseTask reads "id;description;time limit[;status]". Status defaults to
// active and accepts the same names as task.ParseStatus.
func ParseTask(s string) (*task.Task, error) {
	fields := strings.Split(s, ";")
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("expected id;description;time limit[;status]")
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid task id %q: must be an integer", fields[0])
	}
	timeLimit, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("invalid time limit %q: must be an integer", fields[2])
	}
	status := task.StatusActive
	if len(fields) == 4 {
		if status, err = task.ParseStatus(fields[3]); err != nil {
			return nil, err
		}
	}
	return task.New(id, fields[1], timeLimit, status)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < MinTerminalWidth || m.height < MinTerminalHeight) {
		return m.renderTerminalTooSmall()
	}

	var content string
	switch m.currentView {
	case ViewPrompt:
		content = m.prompt.View()
	case ViewReport:
		content = m.report.View()
	default:
		content = m.home.View()
	}
	if m.dirty && m.currentView == ViewHome {
		content += "\n" + styles.ActiveStyle.Render("unsaved changes")
	}
	return content
}

func (m Model) renderTerminalTooSmall() string {
	msg := fmt.Sprintf("Terminal too small\n\nMinimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styles.ErrorStyle.Render(msg))
}
