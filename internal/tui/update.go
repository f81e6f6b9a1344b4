package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case FieldChangedMsg:
		return m.applyChange(msg)

	case ResetMsg:
		return m.applyReset(msg)

	case frameMsg:
		if m.anim.step() {
			m.refreshViewport()
			return m, frameTick()
		}
		m.anim.running = false
		m.refreshViewport()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.log.Info("box model explorer stopped")
		return m, tea.Quit
	}

	ctrl := m.focused()
	if ctrl.Capturing() {
		cmd, _ := ctrl.HandleKey(msg)
		m.refreshViewport()
		return m, cmd
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Info("box model explorer stopped")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Up):
		m.moveWithinPanel(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveWithinPanel(1)
	case key.Matches(msg, m.keys.Panel):
		if role, ok := panelForKey(msg.String()); ok {
			m.setFocus(int(role) * len(style.Fields()))
		}
	case key.Matches(msg, m.keys.Reset):
		return m.applyReset(ResetMsg{Role: m.FocusedRole()})
	case key.Matches(msg, m.keys.ResetAll):
		return m.applyReset(ResetMsg{All: true})
	default:
		cmd, _ = ctrl.HandleKey(msg)
	}

	m.refreshViewport()
	return m, cmd
}

func panelForKey(k string) (style.Role, bool) {
	switch k {
	case "1":
		return style.Parent, true
	case "2":
		return style.Child, true
	case "3":
		return style.Grandchild, true
	}
	return 0, false
}

// applyChange routes a control emission to the sheet, then re-syncs the
// role's controls and retargets the preview animation.
func (m Model) applyChange(msg FieldChangedMsg) (tea.Model, tea.Cmd) {
	fields := map[string]any{
		"role":  msg.Role.String(),
		"field": msg.Field.String(),
	}
	if msg.Value != nil {
		fields["value"] = msg.Value.String()
	}
	log := m.log.WithFields(fields)

	if err := m.sheet.Update(msg.Role, msg.Field, msg.Value); err != nil {
		log.WithFields(map[string]any{"error": err.Error()}).Warn("style update rejected")
		m.status = err.Error()
		m.statusErr = true
		m.refreshViewport()
		return m, nil
	}

	m.syncRole(msg.Role)
	log.Debug("style updated")
	m.status = fmt.Sprintf("%s.%s = %s", msg.Role, msg.Field, msg.Value)
	m.statusErr = false

	cmd := m.startAnimation()
	m.refreshViewport()
	return m, cmd
}

func (m Model) applyReset(msg ResetMsg) (tea.Model, tea.Cmd) {
	if msg.All {
		m.sheet.ResetAll()
		m.status = "all elements reset to defaults"
	} else {
		m.sheet.Reset(msg.Role)
		m.status = strings.ToLower(msg.Role.Title()) + " reset to defaults"
	}
	m.statusErr = false
	for _, role := range style.Roles() {
		m.syncRole(role)
	}
	m.log.WithFields(map[string]any{"all": msg.All, "role": msg.Role.String()}).Debug("style reset")

	cmd := m.startAnimation()
	m.refreshViewport()
	return m, cmd
}

// startAnimation begins the frame loop unless it is already running or
// there is nothing to animate.
func (m *Model) startAnimation() tea.Cmd {
	if m.anim.running || m.anim.settled() {
		return nil
	}
	m.anim.running = true
	return frameTick()
}
