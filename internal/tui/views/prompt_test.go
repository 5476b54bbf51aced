package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tasktree/tasktree/internal/tui/msgs"
)

func typeInto(m PromptModel, s string) PromptModel {
	for _, r := range s {
		m, _ = m.Update(runeKey(string(r)))
	}
	return m
}

func TestPromptModel_Submit(t *testing.T) {
	m := NewPromptModel(PromptConfig{Action: msgs.ActionFind, Title: "Find task", Label: "Task id:"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Result() != ResultPending {
		t.Error("empty input should not submit")
	}

	m = typeInto(m, "42")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Result() != ResultSubmit {
		t.Errorf("Result() = %v, want ResultSubmit", m.Result())
	}
	if m.Value() != "42" {
		t.Errorf("Value() = %q, want %q", m.Value(), "42")
	}
	if m.Action() != msgs.ActionFind {
		t.Errorf("Action() = %q, want %q", m.Action(), msgs.ActionFind)
	}
}

func TestPromptModel_Cancel(t *testing.T) {
	m := NewPromptModel(PromptConfig{Title: "Delete task"})
	m = typeInto(m, "7")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.Result() != ResultCancel {
		t.Errorf("Result() = %v, want ResultCancel", m.Result())
	}
}

func TestPromptModel_Reject(t *testing.T) {
	m := NewPromptModel(PromptConfig{Title: "Add task"})
	m = typeInto(m, "x")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Reject("invalid task id")
	m.SetSize(80, 24)

	if m.Result() != ResultPending {
		t.Errorf("Result() = %v, want ResultPending", m.Result())
	}
	if m.Value() != "x" {
		t.Errorf("Value() = %q, input should be kept", m.Value())
	}
	if !strings.Contains(m.View(), "invalid task id") {
		t.Error("expected view to show the rejection")
	}
}

func TestPromptModel_Confirm(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want PromptResult
	}{
		{runeKey("y"), ResultSubmit},
		{runeKey("n"), ResultCancel},
		{tea.KeyMsg{Type: tea.KeyEsc}, ResultCancel},
		{runeKey("a"), ResultPending},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m := NewPromptModel(PromptConfig{Title: "Clear", Confirm: true})
			m, _ = m.Update(tt.key)
			if m.Result() != tt.want {
				t.Errorf("Result() = %v, want %v", m.Result(), tt.want)
			}
		})
	}
}
