// Package msgs defines shared message types for TUI view transitions.
package msgs

// Action identifies a menu entry by its shortcut key.
type Action string

const (
	ActionAdd       Action = "a"
	ActionFind      Action = "f"
	ActionDelete    Action = "d"
	ActionComplete  Action = "x"
	ActionActive    Action = "1"
	ActionCompleted Action = "2"
	ActionList      Action = "l"
	ActionClear     Action = "c"
	ActionSave      Action = "s"
	ActionQuit      Action = "q"
)

// ActionMsg is sent when a menu entry is chosen on the home view.
type ActionMsg struct {
	Action Action
}

// GoToHomeMsg signals a return to the home menu.
type GoToHomeMsg struct{}
