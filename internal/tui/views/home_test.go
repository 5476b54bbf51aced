package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tasktree/tasktree/internal/tui/msgs"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewHomeModel_MenuItems(t *testing.T) {
	m := NewHomeModel()

	if m.Cursor() != 0 {
		t.Errorf("expected cursor to be 0, got %d", m.Cursor())
	}
	// Tasks(4) + Reports(3) + Clear/Save/Quit(3)
	if got := m.totalMenuItems(); got != 10 {
		t.Errorf("expected 10 menu items, got %d", got)
	}
}

func TestHomeModel_Update_Shortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want msgs.Action
	}{
		{"a", msgs.ActionAdd},
		{"f", msgs.ActionFind},
		{"d", msgs.ActionDelete},
		{"x", msgs.ActionComplete},
		{"1", msgs.ActionActive},
		{"2", msgs.ActionCompleted},
		{"l", msgs.ActionList},
		{"c", msgs.ActionClear},
		{"s", msgs.ActionSave},
		{"q", msgs.ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := NewHomeModel().Update(runeKey(tt.key))
			if cmd == nil {
				t.Fatal("expected a command")
			}
			msg, ok := cmd().(msgs.ActionMsg)
			if !ok {
				t.Fatalf("expected ActionMsg, got %T", cmd())
			}
			if msg.Action != tt.want {
				t.Errorf("action = %q, want %q", msg.Action, tt.want)
			}
		})
	}
}

func TestHomeModel_Update_UnknownKeyIgnored(t *testing.T) {
	_, cmd := NewHomeModel().Update(runeKey("z"))
	if cmd != nil {
		t.Error("expected no command for an unbound key")
	}
}

func TestHomeModel_Update_CtrlCQuits(t *testing.T) {
	_, cmd := NewHomeModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg := cmd().(msgs.ActionMsg); msg.Action != msgs.ActionQuit {
		t.Errorf("action = %q, want %q", msg.Action, msgs.ActionQuit)
	}
}

func TestHomeModel_Update_Navigate(t *testing.T) {
	m := NewHomeModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Errorf("cursor should stay at 0, got %d", m.Cursor())
	}

	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Cursor() != 9 {
		t.Errorf("cursor should stop at the last item, got %d", m.Cursor())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := cmd().(msgs.ActionMsg); msg.Action != msgs.ActionQuit {
		t.Errorf("enter on last item = %q, want %q", msg.Action, msgs.ActionQuit)
	}
}

func TestHomeModel_View(t *testing.T) {
	m := NewHomeModel()
	if m.View() != "" {
		t.Error("expected empty view before size is known")
	}

	m.SetSize(100, 40)
	m.SetNotice("Task 3 added.", false)
	m.SetCounts(1, 4)
	view := m.View()

	for _, want := range []string{"T A S K T R E E", "[a] Add task", "[2] Completed tasks", "Task 3 added.", "1/4 completed"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
