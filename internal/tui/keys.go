package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application level bindings. Control bindings live in the
// controls themselves.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	Panel     key.Binding
	Reset     key.Binding
	ResetAll  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Panel:     key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "jump to element")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset element")),
		ResetAll:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset all")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpKeys merges the focused control's bindings with the global ones for
// the help footer.
type helpKeys struct {
	global  KeyMap
	control []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.control)+3)
	out = append(out, h.control...)
	return append(out, h.global.Next, h.global.Help, h.global.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.control,
		{h.global.Next, h.global.Prev, h.global.Up, h.global.Down, h.global.Panel},
		{h.global.Reset, h.global.ResetAll, h.global.Help, h.global.Quit},
	}
}
