package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

// FieldChangedMsg asks the application to set one field of one element's
// style record. Controls produce it; Model.Update applies it.
type FieldChangedMsg struct {
	Role  style.Role
	Field style.Field
	Value style.Value
}

// ResetMsg restores default records, for one role or, with All set, for
// every element.
type ResetMsg struct {
	Role style.Role
	All  bool
}

type frameMsg struct{}

const frameInterval = time.Second / 60

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}
