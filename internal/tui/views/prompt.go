package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasktree/tasktree/internal/tui/components"
	"github.com/tasktree/tasktree/internal/tui/msgs"
	"github.com/tasktree/tasktree/internal/tui/styles"
)

// PromptResult represents the outcome of the prompt interaction.
type PromptResult int

const (
	// ResultPending means no decision has been made yet.
	ResultPending PromptResult = iota
	// ResultSubmit means the input was accepted.
	ResultSubmit
	// ResultCancel means the prompt was dismissed.
	ResultCancel
)

// PromptConfig holds initialization parameters.
type PromptConfig struct {
	Action      msgs.Action
	Title       string
	Label       string
	Placeholder string
	// Confirm turns the prompt into a y/n question with no text input.
	Confirm bool
}

// PromptModel asks for one line of input or a yes/no confirmation.
type PromptModel struct {
	config PromptConfig
	input  textinput.Model
	result PromptResult

	// Error from the last submission, shown under the input
	errorMsg string

	width  int
	height int
}

// NewPromptModel creates a focused prompt.
func NewPromptModel(config PromptConfig) PromptModel {
	ti := textinput.New()
	ti.Placeholder = config.Placeholder
	ti.CharLimit = 64
	ti.Width = 40
	if !config.Confirm {
		ti.Focus()
	}

	return PromptModel{
		config: config,
		input:  ti,
		result: ResultPending,
	}
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	if m.config.Confirm {
		return nil
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (PromptModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.config.Confirm {
			return m.handleConfirmKeys(msg)
		}
		return m.handleEditKeys(msg)
	}

	if !m.config.Confirm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PromptModel) handleConfirmKeys(msg tea.KeyMsg) (PromptModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.result = ResultSubmit
	case "n", "N", "esc", "ctrl+c":
		m.result = ResultCancel
	}
	return m, nil
}

func (m PromptModel) handleEditKeys(msg tea.KeyMsg) (PromptModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		m.result = ResultSubmit
		m.input.Blur()
		return m, nil

	case "esc", "ctrl+c":
		m.result = ResultCancel
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Reject reopens a submitted prompt with an error message, keeping the input.
func (m *PromptModel) Reject(errorMsg string) {
	m.errorMsg = errorMsg
	m.result = ResultPending
	m.input.Focus()
}

// View implements tea.Model.
func (m PromptModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render(m.config.Title)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	b.WriteString(m.config.Label)
	b.WriteString("\n\n")
	if !m.config.Confirm {
		b.WriteString("  ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errorMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n\n")

	var items []string
	if m.config.Confirm {
		items = []string{"[y] Yes", "[n] No"}
	} else {
		items = []string{"Enter Confirm", "Esc Cancel"}
	}
	b.WriteString(components.NewStatusBar().Render(m.width, items))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *PromptModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 10
	if m.input.Width < 20 {
		m.input.Width = 20
	}
}

// Action returns the menu action this prompt collects input for.
func (m PromptModel) Action() msgs.Action {
	return m.config.Action
}

// Value returns the current input text.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// Result returns the result of the interaction.
func (m PromptModel) Result() PromptResult {
	return m.result
}
