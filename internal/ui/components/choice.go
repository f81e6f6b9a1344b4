package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

// ChoiceControl is a dropdown cycling through a fixed option list.
type ChoiceControl struct {
	focusable
	label    string
	value    string
	options  []string
	keys     ControlKeyMap
	onChange func(string) tea.Msg
}

// NewChoiceControl creates a dropdown. value is expected to be one of options.
func NewChoiceControl(label, value string, options []string, onChange func(string) tea.Msg) *ChoiceControl {
	return &ChoiceControl{
		label:    label,
		value:    value,
		options:  slices.Clone(options),
		keys:     DefaultControlKeyMap(),
		onChange: onChange,
	}
}

// Label returns the control label.
func (c *ChoiceControl) Label() string { return c.label }

// Value returns the selected option.
func (c *ChoiceControl) Value() string { return c.value }

// Options returns a copy of the option list.
func (c *ChoiceControl) Options() []string { return slices.Clone(c.options) }

// SetValue updates the selected option.
func (c *ChoiceControl) SetValue(v string) { c.value = v }

// Validate reports a value that is not among the options.
func (c *ChoiceControl) Validate() error {
	if len(c.options) == 0 {
		return apperrors.NewValidationError(c.label, "no options configured", nil)
	}
	if !slices.Contains(c.options, c.value) {
		return apperrors.NewValidationError(c.label,
			fmt.Sprintf("value %q is not one of %s", c.value, strings.Join(c.options, ", ")), nil)
	}
	return nil
}

// Capturing is always false.
func (c *ChoiceControl) Capturing() bool { return false }

// HandleKey cycles the selection, wrapping at either end.
func (c *ChoiceControl) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if len(c.options) == 0 {
		return nil, false
	}

	var delta int
	switch {
	case key.Matches(msg, c.keys.Decrease):
		delta = -1
	case key.Matches(msg, c.keys.Increase), msg.String() == "enter", msg.String() == " ":
		delta = 1
	default:
		return nil, false
	}

	idx := slices.Index(c.options, c.value)
	if idx < 0 {
		idx = 0
		if delta < 0 {
			idx = len(c.options) - 1
		}
	} else {
		idx = (idx + delta + len(c.options)) % len(c.options)
	}

	next := c.options[idx]
	if next == c.value || c.onChange == nil {
		return nil, true
	}
	return emit(c.onChange(next)), true
}

// Bindings lists the keys for the help footer.
func (c *ChoiceControl) Bindings() []key.Binding {
	cycle := key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "choose"))
	return []key.Binding{cycle}
}

// View renders the control.
func (c *ChoiceControl) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders "label: ‹ value ›" followed, when focused, by the
// option list with the selection highlighted.
func (c *ChoiceControl) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	arrows := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)
	current := TypographyStyle(theme, TypographyVariantReadout).Render(c.value)
	row := controlRow(theme, c.label, c.focused, arrows.Render("‹ ")+current+arrows.Render(" ›"))
	if !c.focused {
		return row
	}

	muted := TypographyStyle(theme, TypographyVariantMuted)
	selected := TypographyStyle(theme, TypographyVariantSelected)
	items := make([]string, 0, len(c.options))
	for _, opt := range c.options {
		if opt == c.value {
			items = append(items, selected.Render(opt))
			continue
		}
		items = append(items, muted.Padding(0, 1).Render(opt))
	}

	indent := strings.Repeat(" ", 2+lipgloss.Width(TypographyStyle(theme, TypographyVariantLabel).Render(c.label+":")))
	return lipgloss.JoinVertical(lipgloss.Left, row, indent+strings.Join(items, ""))
}
