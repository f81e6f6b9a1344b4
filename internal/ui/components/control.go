package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boxlab/internal/ui"
)

// Control binds a terminal widget to one field of a style record. A control
// never changes its own value: it reports the value the user asked for
// through its change callback and waits for the owner to call SetValue.
type Control interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
	Label() string
	Focus()
	Blur()
	Focused() bool
	// Capturing reports whether the control wants every key, as the hex
	// editor does while open.
	Capturing() bool
	// HandleKey reacts to a key press. It returns a command delivering at
	// most one change message, and whether the key was consumed.
	HandleKey(msg tea.KeyMsg) (tea.Cmd, bool)
	Bindings() []key.Binding
}

// ControlKeyMap lists the keys understood by the control primitives.
type ControlKeyMap struct {
	Decrease     key.Binding
	Increase     key.Binding
	DecreaseMore key.Binding
	IncreaseMore key.Binding
	Min          key.Binding
	Max          key.Binding
	Lighter      key.Binding
	Darker       key.Binding
	Preset       key.Binding
	Edit         key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
}

// DefaultControlKeyMap returns the standard bindings.
func DefaultControlKeyMap() ControlKeyMap {
	return ControlKeyMap{
		Decrease:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		DecreaseMore: key.NewBinding(key.WithKeys("shift+left", "["), key.WithHelp("[", "decrease ×10")),
		IncreaseMore: key.NewBinding(key.WithKeys("shift+right", "]"), key.WithHelp("]", "increase ×10")),
		Min:          key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "minimum")),
		Max:          key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "maximum")),
		Lighter:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "lighter")),
		Darker:       key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "darker")),
		Preset:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Edit:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit hex")),
		Confirm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// FocusMarker prefixes the row of the focused control.
const FocusMarker = "▸"

// focusable holds the focus flag shared by all controls.
type focusable struct {
	focused bool
}

func (f *focusable) Focus()        { f.focused = true }
func (f *focusable) Blur()         { f.focused = false }
func (f *focusable) Focused() bool { return f.focused }

// emit wraps a change message in a command. A nil message yields a nil command.
func emit(msg tea.Msg) tea.Cmd {
	if msg == nil {
		return nil
	}
	return func() tea.Msg { return msg }
}

// controlRow lays out the shared "cursor label widget" line of a control.
func controlRow(theme Theme, label string, focused bool, widget string) string {
	cursor := "  "
	labelStyle := TypographyStyle(theme, TypographyVariantLabel)
	if focused {
		cursor = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Bold(true).Render(FocusMarker + " ")
		labelStyle = labelStyle.Underline(true)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cursor, labelStyle.Render(label+":"), widget)
}
