package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tasktree/tasktree/internal/task"
	"github.com/tasktree/tasktree/internal/testutil"
	"github.com/tasktree/tasktree/internal/tui/msgs"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds one key and follows the view transition messages it produces.
func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	from := m.currentView
	next, cmd := m.Update(k)
	m = next.(Model)
	if cmd == nil || from == ViewPrompt {
		return m, cmd
	}
	switch msg := cmd().(type) {
	case msgs.ActionMsg, msgs.GoToHomeMsg:
		next, cmd = m.Update(msg)
		return next.(Model), cmd
	}
	return m, cmd
}

// typeLine types s into the open prompt and submits it.
func typeLine(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, key(string(r)))
	}
	m, _ = press(t, m, key("enter"))
	return m
}

func newTestModel(t *testing.T, tasks ...task.Task) (Model, *int) {
	saves := 0
	m := NewModel(Options{
		Tree: testutil.NewTree(t, tasks...),
		Save: func() error { saves++; return nil },
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), &saves
}

func TestModel_AddTask(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, key("a"))
	if m.currentView != ViewPrompt {
		t.Fatalf("currentView = %v, want ViewPrompt", m.currentView)
	}
	m = typeLine(t, m, "7;Write report;15")

	if m.currentView != ViewHome {
		t.Errorf("currentView = %v, want ViewHome", m.currentView)
	}
	tk, ok := m.opts.Tree.Find(7)
	if !ok {
		t.Fatal("task 7 should be in the tree")
	}
	if tk.Description != "Write report" || tk.TimeLimit != 15 || tk.Status != task.StatusActive {
		t.Errorf("unexpected task: %+v", tk)
	}
	if !m.dirty {
		t.Error("model should be dirty after an insert")
	}
	if m.home.Notice() != "Task 7 added." {
		t.Errorf("notice = %q", m.home.Notice())
	}
}

func TestModel_AddTask_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"missing fields", "1;A", "expected id;description"},
		{"bad id", "x;A;1", "invalid task id"},
		{"bad limit", "1;A;soon", "invalid time limit"},
		{"long description", "1;123456789012345678901;1", "longer than 20"},
		{"duplicate id", "5;Again;1", "task 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, testutil.Active(5, "E", 1))
			m, _ = press(t, m, key("a"))
			m = typeLine(t, m, tt.input)

			if m.currentView != ViewPrompt {
				t.Fatalf("currentView = %v, prompt should stay open", m.currentView)
			}
			if view := m.View(); !strings.Contains(view, tt.wantErr) {
				t.Errorf("view should contain %q:\n%s", tt.wantErr, view)
			}
			if m.opts.Tree.Len() != 1 {
				t.Errorf("Len() = %d, tree should be unchanged", m.opts.Tree.Len())
			}
		})
	}
}

func TestModel_FindTask(t *testing.T) {
	m, _ := newTestModel(t, testutil.Active(3, "C", 9))

	m, _ = press(t, m, key("f"))
	m = typeLine(t, m, "3")
	if m.currentView != ViewReport {
		t.Fatalf("currentView = %v, want ViewReport", m.currentView)
	}
	if !strings.Contains(m.report.Body(), "| 3     | C") {
		t.Errorf("report body = %q", m.report.Body())
	}

	m, _ = press(t, m, key("x"))
	if m.currentView != ViewHome {
		t.Errorf("any key should return home, got %v", m.currentView)
	}

	m, _ = press(t, m, key("f"))
	m = typeLine(t, m, "99")
	if m.home.Notice() != "Task 99 not found." {
		t.Errorf("notice = %q", m.home.Notice())
	}
}

func TestModel_DeleteAndComplete(t *testing.T) {
	m, _ := newTestModel(t,
		testutil.Active(2, "B", 5),
		testutil.Active(1, "A", 10),
		testutil.Active(3, "C", 20),
	)

	m, _ = press(t, m, key("d"))
	m = typeLine(t, m, "2")
	if _, ok := m.opts.Tree.Find(2); ok {
		t.Error("task 2 should be deleted")
	}

	m, _ = press(t, m, key("x"))
	m = typeLine(t, m, "3")
	if tk, _ := m.opts.Tree.Find(3); tk.Status != task.StatusCompleted {
		t.Errorf("task 3 status = %v, want completed", tk.Status)
	}

	m, _ = press(t, m, key("x"))
	m = typeLine(t, m, "3")
	if m.home.Notice() != "Task 3 is already completed." {
		t.Errorf("notice = %q", m.home.Notice())
	}
}

func TestModel_Reports(t *testing.T) {
	m, _ := newTestModel(t,
		testutil.Active(1, "A", 10),
		testutil.Active(2, "B", 5),
		testutil.Completed(3, "C", 20),
	)

	m, _ = press(t, m, key("1"))
	if m.currentView != ViewReport {
		t.Fatalf("currentView = %v, want ViewReport", m.currentView)
	}
	if got := testutil.RowIDs(t, m.report.Body()); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("active report ids = %v, want [2 1]", got)
	}

	m, _ = press(t, m, key("q"))
	m, _ = press(t, m, key("2"))
	if got := testutil.RowIDs(t, m.report.Body()); len(got) != 1 || got[0] != 3 {
		t.Errorf("completed report ids = %v, want [3]", got)
	}
}

func TestModel_EmptyReportStaysHome(t *testing.T) {
	m, _ := newTestModel(t, testutil.Completed(1, "A", 1))

	m, _ = press(t, m, key("1"))
	if m.currentView != ViewHome {
		t.Errorf("currentView = %v, want ViewHome", m.currentView)
	}
	if m.home.Notice() != "No active tasks." {
		t.Errorf("notice = %q", m.home.Notice())
	}
}

func TestModel_Clear(t *testing.T) {
	m, _ := newTestModel(t, testutil.Active(1, "A", 1), testutil.Active(2, "B", 1))

	m, _ = press(t, m, key("c"))
	m, _ = press(t, m, key("n"))
	if m.opts.Tree.Len() != 2 {
		t.Fatal("declining should keep the tasks")
	}

	m, _ = press(t, m, key("c"))
	m, _ = press(t, m, key("y"))
	if m.opts.Tree.Len() != 0 {
		t.Errorf("Len() = %d after clear, want 0", m.opts.Tree.Len())
	}
	if m.home.Notice() != "Cleared 2 tasks." {
		t.Errorf("notice = %q", m.home.Notice())
	}
}

func TestModel_SaveAndQuit(t *testing.T) {
	m, saves := newTestModel(t)

	// Nothing changed, so quitting does not save.
	_, cmd := press(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if *saves != 0 {
		t.Errorf("saves = %d, want 0", *saves)
	}

	m, _ = press(t, m, key("a"))
	m = typeLine(t, m, "1;A;1")
	m, _ = press(t, m, key("s"))
	if *saves != 1 || m.dirty {
		t.Errorf("saves = %d, dirty = %v after [s]", *saves, m.dirty)
	}

	m, _ = press(t, m, key("d"))
	m = typeLine(t, m, "1")
	m, cmd = press(t, m, key("q"))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if *saves != 2 {
		t.Errorf("quit with unsaved changes should save, saves = %d", *saves)
	}
}

func TestModel_QuitSaveFailure(t *testing.T) {
	m := NewModel(Options{
		Tree: task.NewTree(),
		Save: func() error { return errors.New("disk full") },
	})
	m.dirty = true

	next, _ := m.Update(msgs.ActionMsg{Action: msgs.ActionQuit})
	if err := next.(Model).err; err == nil || err.Error() != "disk full" {
		t.Errorf("err = %v, want disk full", err)
	}
}

func TestParseTask(t *testing.T) {
	tests := []struct {
		input   string
		want    task.Task
		wantErr bool
	}{
		{input: "1;A;10", want: task.Task{ID: 1, Description: "A", TimeLimit: 10}},
		{input: " 2 ; Two words ; 5 ", want: task.Task{ID: 2, Description: "Two words", TimeLimit: 5}},
		{input: "3;C;1;concluida", want: task.Task{ID: 3, Description: "C", TimeLimit: 1, Status: task.StatusCompleted}},
		{input: "-4;Neg;-1;active", want: task.Task{ID: -4, Description: "Neg", TimeLimit: -1}},
		{input: "3;C;1;done", wantErr: true},
		{input: "1;2;3;4;5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTask(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("ParseTask(%q) = %+v, want %+v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{"exactly minimum size", MinTerminalWidth, MinTerminalHeight, false},
		{"width too small", MinTerminalWidth - 1, MinTerminalHeight, true},
		{"height too small", MinTerminalWidth, MinTerminalHeight - 1, true},
		{"larger than minimum", 100, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := NewModel(Options{}).Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			view := next.(Model).View()

			if got := strings.Contains(view, "Terminal too small"); got != tt.expectSmall {
				t.Errorf("too small shown = %v, want %v", got, tt.expectSmall)
			}
		})
	}
}

func TestModel_renderTerminalTooSmall_ShowsDimensions(t *testing.T) {
	m := NewModel(Options{})
	m.width = 50
	m.height = 10

	view := m.renderTerminalTooSmall()

	if !strings.Contains(view, "60x15") {
		t.Error("expected minimum dimensions 60x15 to be shown")
	}
	if !strings.Contains(view, "50x10") {
		t.Error("expected current dimensions 50x10 to be shown")
	}
}
