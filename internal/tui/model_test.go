package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/boxlab/internal/logger"
	"github.com/alexisbeaulieu97/boxlab/internal/style"
	"github.com/alexisbeaulieu97/boxlab/internal/ui/components"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := DefaultOptions()
	opts.Animate = false
	m := NewModel(style.NewSheet(), opts)
	return send(t, m, tea.WindowSizeMsg{Width: 140, Height: 60})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// press delivers a key and feeds any resulting change message back in, the
// way the Bubbletea runtime would.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(k)
	out, ok := next.(Model)
	require.True(t, ok)
	if cmd == nil {
		return out
	}
	if change, ok := cmd().(FieldChangedMsg); ok {
		out = send(t, out, change)
	}
	return out
}

func keyOf(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeKey(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runeKey(string(r)))
	}
	return m
}

func TestNewModelStartsFromDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for _, role := range style.Roles() {
		assert.Equal(t, style.Defaults(role), m.Sheet().Record(role))
	}
	assert.Equal(t, style.Parent, m.FocusedRole())
	assert.Equal(t, style.Padding, m.FocusedField())
	assert.True(t, m.Control(style.Parent, style.Padding).Focused())
}

func TestNewModelNilSheet(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, Options{})
	require.NotNil(t, m.Sheet())
	assert.Equal(t, style.Defaults(style.Child), m.Sheet().Record(style.Child))
}

func TestParentWidthSlider(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, keyOf(tea.KeyDown))
	m = press(t, m, keyOf(tea.KeyDown))
	require.Equal(t, style.Width, m.FocusedField())

	previewBefore := m.renderPreview()
	childBefore := components.NewBoxElement(m.anim.frame(style.Child), "Child").View()

	for i := 0; i < 15; i++ {
		m = press(t, m, runeKey("]"))
	}

	want := style.Defaults(style.Parent)
	want.Width = 450
	assert.Equal(t, want, m.Sheet().Record(style.Parent))
	assert.Equal(t, style.Defaults(style.Child), m.Sheet().Record(style.Child))
	assert.Equal(t, style.Defaults(style.Grandchild), m.Sheet().Record(style.Grandchild))

	slider, ok := m.Control(style.Parent, style.Width).(*components.RangeControl)
	require.True(t, ok)
	assert.Equal(t, 450, slider.Value())
	assert.Contains(t, m.View(), "450px")

	// 150px more at 10px per column.
	previewAfter := m.renderPreview()
	assert.Equal(t, lipgloss.Width(previewBefore)+15, lipgloss.Width(previewAfter))
	assert.Equal(t, lipgloss.Height(previewBefore), lipgloss.Height(previewAfter))
	assert.Equal(t, style.Defaults(style.Child), m.anim.frame(style.Child))
	assert.Equal(t, style.Defaults(style.Grandchild), m.anim.frame(style.Grandchild))
	assert.Equal(t, childBefore, components.NewBoxElement(m.anim.frame(style.Child), "Child").View())
}

func TestModelsShareSheetWithoutSubscribing(t *testing.T) {
	t.Parallel()

	sheet := style.NewSheet()
	opts := DefaultOptions()
	opts.Animate = false
	first := NewModel(sheet, opts)
	second := NewModel(sheet, opts)
	for _, role := range style.Roles() {
		assert.Zero(t, sheet.Cell(role).Subscribers())
	}

	second = send(t, second, FieldChangedMsg{Role: style.Child, Field: style.Padding, Value: style.Pixels(40)})
	assert.Equal(t, 40, second.Control(style.Child, style.Padding).(*components.RangeControl).Value())
	assert.Equal(t, 5, first.Control(style.Child, style.Padding).(*components.RangeControl).Value())

	first = send(t, first, ResetMsg{All: true})
	assert.Equal(t, style.Defaults(style.Child), sheet.Record(style.Child))
	assert.Equal(t, 5, first.Control(style.Child, style.Padding).(*components.RangeControl).Value())
	assert.Equal(t, 40, second.Control(style.Child, style.Padding).(*components.RangeControl).Value())
}

func TestRejectedUpdateLogsWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Animate = false
	opts.Logger = log
	m := NewModel(style.NewSheet(), opts)
	m = send(t, m, FieldChangedMsg{Role: style.Parent, Field: style.Width, Value: style.Pixels(999)})

	assert.True(t, m.statusErr)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "style update rejected")
}

func TestChildDisplayFlex(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runeKey("2"))
	for i := 0; i < 5; i++ {
		m = press(t, m, keyOf(tea.KeyDown))
	}
	require.Equal(t, style.Child, m.FocusedRole())
	require.Equal(t, style.DisplayField, m.FocusedField())

	for i := 0; i < 3; i++ {
		m = press(t, m, keyOf(tea.KeyRight))
	}

	assert.Equal(t, style.DisplayFlex, m.Sheet().Record(style.Child).Display)
	assert.Equal(t, style.Defaults(style.Parent), m.Sheet().Record(style.Parent))
	assert.Equal(t, style.Defaults(style.Grandchild), m.Sheet().Record(style.Grandchild))
	assert.Equal(t, uint64(3), m.Sheet().Cell(style.Child).Revision())
}

func TestGrandchildBackgroundHex(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runeKey("3"))
	for i := 0; i < 6; i++ {
		m = press(t, m, keyOf(tea.KeyDown))
	}
	require.Equal(t, style.BackgroundColor, m.FocusedField())

	m = press(t, m, keyOf(tea.KeyEnter))
	for i := 0; i < 7; i++ {
		m = press(t, m, keyOf(tea.KeyBackspace))
	}
	m = typeText(t, m, "#FF0000")
	m = press(t, m, keyOf(tea.KeyEnter))

	want := style.Defaults(style.Grandchild)
	want.Background = "#FF0000"
	assert.Equal(t, want, m.Sheet().Record(style.Grandchild))
	assert.Equal(t, "#FF0000", m.Control(style.Grandchild, style.BackgroundColor).(*components.ColorControl).Value())
}

func TestHexEditorCapturesGlobalKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runeKey("3"))
	for i := 0; i < 6; i++ {
		m = press(t, m, keyOf(tea.KeyDown))
	}
	m = press(t, m, keyOf(tea.KeyEnter))

	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit)
	}
	assert.True(t, m.focused().Capturing())
	assert.Equal(t, style.Grandchild, m.FocusedRole())

	m = press(t, m, keyOf(tea.KeyEsc))
	assert.False(t, m.focused().Capturing())
	assert.Equal(t, style.Defaults(style.Grandchild), m.Sheet().Record(style.Grandchild))
}

func TestFocusNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, keyOf(tea.KeyShiftTab))
	assert.Equal(t, style.Grandchild, m.FocusedRole())
	assert.Equal(t, style.BackgroundColor, m.FocusedField())

	m = press(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, style.Parent, m.FocusedRole())
	assert.Equal(t, style.Padding, m.FocusedField())

	m = press(t, m, keyOf(tea.KeyUp))
	assert.Equal(t, style.Padding, m.FocusedField(), "up stops at the top of a panel")

	for i := 0; i < 10; i++ {
		m = press(t, m, runeKey("j"))
	}
	assert.Equal(t, style.Parent, m.FocusedRole(), "down stays inside the panel")
	assert.Equal(t, style.BackgroundColor, m.FocusedField())

	m = press(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, style.Child, m.FocusedRole())

	focusedCount := 0
	for _, role := range style.Roles() {
		for _, field := range style.Fields() {
			if m.Control(role, field).Focused() {
				focusedCount++
			}
		}
	}
	assert.Equal(t, 1, focusedCount)
}

func TestRejectedUpdateLeavesRecord(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, FieldChangedMsg{Role: style.Parent, Field: style.Width, Value: style.Pixels(999)})

	assert.Equal(t, style.Defaults(style.Parent), m.Sheet().Record(style.Parent))
	assert.True(t, m.statusErr)
	assert.Contains(t, m.Status(), "width")
	status := m.renderStatus()
	assert.Contains(t, status, "error")
	assert.Contains(t, status, m.Status())

	m = send(t, m, FieldChangedMsg{Role: style.Parent, Field: style.Width, Value: style.Color("#FFFFFF")})
	assert.Equal(t, style.Defaults(style.Parent), m.Sheet().Record(style.Parent))
}

func TestRepeatedUpdateIsIdempotent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	change := FieldChangedMsg{Role: style.Child, Field: style.Padding, Value: style.Pixels(40)}
	m = send(t, m, change)
	first := m.Sheet().Record(style.Child)
	rev := m.Sheet().Cell(style.Child).Revision()

	m = send(t, m, change)
	assert.Equal(t, first, m.Sheet().Record(style.Child))
	assert.Equal(t, rev, m.Sheet().Cell(style.Child).Revision())
	assert.Equal(t, "child.padding = 40px", m.Status())
}

func TestReset(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = send(t, m, FieldChangedMsg{Role: style.Parent, Field: style.Margin, Value: style.Pixels(50)})
	m = send(t, m, FieldChangedMsg{Role: style.Child, Field: style.Margin, Value: style.Pixels(50)})

	m = press(t, m, runeKey("r"))
	assert.Equal(t, style.Defaults(style.Parent), m.Sheet().Record(style.Parent))
	assert.Equal(t, style.Pixels(50), m.Sheet().Record(style.Child).Margin)

	slider := m.Control(style.Parent, style.Margin).(*components.RangeControl)
	assert.Equal(t, 10, slider.Value())

	m = press(t, m, runeKey("R"))
	assert.Equal(t, style.Defaults(style.Child), m.Sheet().Record(style.Child))
}

func TestTransitionSettlesOnTarget(t *testing.T) {
	t.Parallel()

	m := NewModel(style.NewSheet(), DefaultOptions())
	next, cmd := m.Update(FieldChangedMsg{Role: style.Parent, Field: style.Width, Value: style.Pixels(450)})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.Animating())
	assert.Equal(t, style.Pixels(450), m.Sheet().Record(style.Parent).Width, "records change at once")
	assert.Less(t, m.anim.frame(style.Parent).Width, style.Pixels(450))

	for i := 0; i < 600; i++ {
		next, cmd = m.Update(frameMsg{})
		m = next.(Model)
		if cmd == nil {
			break
		}
	}
	assert.Nil(t, cmd)
	assert.False(t, m.Animating())
	assert.Equal(t, m.Sheet().Record(style.Parent), m.anim.frame(style.Parent))
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for _, k := range []tea.KeyMsg{runeKey("q"), keyOf(tea.KeyCtrlC)} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}
