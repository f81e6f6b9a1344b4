package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

const (
	hueStep       = 15.0
	lightnessStep = 0.05
	swatchWidth   = 4
)

// ColorPresets is the palette cycled by the preset key.
var ColorPresets = []style.Color{
	"#E0FFFF",
	"#98FB98",
	"#FFB6C1",
	"#FF0000",
	"#FFD700",
	"#87CEEB",
	"#FFFFFF",
	"#333333",
}

// ColorControl is a color picker with a swatch, a hex readout and an inline
// hex editor.
type ColorControl struct {
	focusable
	label    string
	value    style.Color
	editing  bool
	invalid  bool
	input    textinput.Model
	keys     ControlKeyMap
	onChange func(string) tea.Msg
}

// NewColorControl creates a color picker showing value.
func NewColorControl(label, value string, onChange func(string) tea.Msg) *ColorControl {
	input := textinput.New()
	input.CharLimit = 7
	input.Prompt = ""
	input.Placeholder = "#RRGGBB"
	input.Width = 8
	input.Cursor.SetMode(cursor.CursorStatic)

	return &ColorControl{
		label:    label,
		value:    style.Color(value),
		input:    input,
		keys:     DefaultControlKeyMap(),
		onChange: onChange,
	}
}

// Label returns the control label.
func (c *ColorControl) Label() string { return c.label }

// Value returns the color currently shown.
func (c *ColorControl) Value() string { return c.value.String() }

// SetValue updates the displayed color.
func (c *ColorControl) SetValue(v string) { c.value = style.Color(v) }

// Editing reports whether the hex editor is open.
func (c *ColorControl) Editing() bool { return c.editing }

// Invalid reports whether the last attempted hex commit was rejected.
func (c *ColorControl) Invalid() bool { return c.invalid }

// Capturing reports whether the hex editor owns the keyboard.
func (c *ColorControl) Capturing() bool { return c.editing }

// Blur closes the editor without committing.
func (c *ColorControl) Blur() {
	c.focusable.Blur()
	c.closeEditor()
}

// HandleKey reacts to a key press in picker or editor mode.
func (c *ColorControl) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if c.editing {
		return c.handleEditorKey(msg)
	}

	switch {
	case key.Matches(msg, c.keys.Edit):
		c.openEditor()
		return nil, true
	case key.Matches(msg, c.keys.Decrease):
		return c.commit(c.shiftHue(-hueStep)), true
	case key.Matches(msg, c.keys.Increase):
		return c.commit(c.shiftHue(hueStep)), true
	case key.Matches(msg, c.keys.Lighter):
		return c.commit(c.shiftLightness(lightnessStep)), true
	case key.Matches(msg, c.keys.Darker):
		return c.commit(c.shiftLightness(-lightnessStep)), true
	case key.Matches(msg, c.keys.Preset):
		return c.commit(c.nextPreset()), true
	}
	return nil, false
}

func (c *ColorControl) handleEditorKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		c.closeEditor()
		return nil, true
	case key.Matches(msg, c.keys.Confirm):
		parsed, err := style.ParseColor(strings.TrimSpace(c.input.Value()))
		if err != nil {
			c.invalid = true
			return nil, true
		}
		c.closeEditor()
		return c.commit(parsed), true
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.invalid = false
	return cmd, true
}

func (c *ColorControl) openEditor() {
	c.editing = true
	c.invalid = false
	c.input.SetValue(c.value.String())
	c.input.CursorEnd()
	c.input.Focus()
}

func (c *ColorControl) closeEditor() {
	c.editing = false
	c.invalid = false
	c.input.Blur()
	c.input.Reset()
}

// commit reports next unless it equals the shown value.
func (c *ColorControl) commit(next style.Color) tea.Cmd {
	if next == "" || strings.EqualFold(next.String(), c.value.String()) || c.onChange == nil {
		return nil
	}
	return emit(c.onChange(next.String()))
}

func (c *ColorControl) shiftHue(delta float64) style.Color {
	h, s, l := c.value.Colorful().Hsl()
	h = math.Mod(h+delta+360, 360)
	return style.FromColorful(colorful.Hsl(h, s, l))
}

func (c *ColorControl) shiftLightness(delta float64) style.Color {
	h, s, l := c.value.Colorful().Hsl()
	l = math.Min(math.Max(l+delta, 0), 1)
	return style.FromColorful(colorful.Hsl(h, s, l))
}

func (c *ColorControl) nextPreset() style.Color {
	for i, preset := range ColorPresets {
		if strings.EqualFold(preset.String(), c.value.String()) {
			return ColorPresets[(i+1)%len(ColorPresets)]
		}
	}
	return ColorPresets[0]
}

// Bindings lists the keys for the help footer.
func (c *ColorControl) Bindings() []key.Binding {
	if c.editing {
		return []key.Binding{c.keys.Confirm, c.keys.Cancel}
	}
	hue := key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "hue"))
	return []key.Binding{hue, c.keys.Lighter, c.keys.Darker, c.keys.Preset, c.keys.Edit}
}

// View renders the control.
func (c *ColorControl) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders "label: swatch readout", or the hex editor while it
// is open.
func (c *ColorControl) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(c.value.String())).
		Render(strings.Repeat(" ", swatchWidth))

	var widget string
	if c.editing {
		widget = swatch + " " + c.input.View()
		if c.invalid {
			widget += " " + lipgloss.NewStyle().Foreground(theme.Palette.Danger.Base).Render("✗ invalid hex")
		}
	} else {
		widget = swatch + " " + TypographyStyle(theme, TypographyVariantReadout).Render(c.value.String())
	}
	return controlRow(theme, c.label, c.focused, widget)
}
