package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

const defaultTrackWidth = 24

// RangeControl is a slider with a pixel readout.
type RangeControl struct {
	focusable
	label    string
	value    int
	bounds   style.Range
	track    int
	keys     ControlKeyMap
	onChange func(int) tea.Msg
}

// NewRangeControl creates a slider bounded to 0..100 in steps of 1.
func NewRangeControl(label string, value int, onChange func(int) tea.Msg) *RangeControl {
	return &RangeControl{
		label:    label,
		value:    value,
		bounds:   style.DefaultRange(),
		track:    defaultTrackWidth,
		keys:     DefaultControlKeyMap(),
		onChange: onChange,
	}
}

// WithRange overrides the slider bounds.
func (r *RangeControl) WithRange(min, max, step int) *RangeControl {
	r.bounds = style.Range{Min: min, Max: max, Step: step}
	return r
}

// WithBounds overrides the slider bounds from a style.Range.
func (r *RangeControl) WithBounds(bounds style.Range) *RangeControl {
	r.bounds = bounds
	return r
}

// WithTrackWidth sets the width of the slider track in cells.
func (r *RangeControl) WithTrackWidth(width int) *RangeControl {
	if width > 1 {
		r.track = width
	}
	return r
}

// Label returns the control label.
func (r *RangeControl) Label() string { return r.label }

// Value returns the value currently shown.
func (r *RangeControl) Value() int { return r.value }

// Bounds returns the slider range.
func (r *RangeControl) Bounds() style.Range { return r.bounds }

// SetValue updates the displayed value.
func (r *RangeControl) SetValue(v int) { r.value = v }

// Capturing is always false; sliders never hold on to the keyboard.
func (r *RangeControl) Capturing() bool { return false }

// HandleKey moves the slider. Every accepted key press reports once, with
// the value clamped and snapped to the slider's steps.
func (r *RangeControl) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	step := r.bounds.Step
	if step <= 0 {
		step = 1
	}

	var target int
	switch {
	case key.Matches(msg, r.keys.Decrease):
		target = r.value - step
	case key.Matches(msg, r.keys.Increase):
		target = r.value + step
	case key.Matches(msg, r.keys.DecreaseMore):
		target = r.value - 10*step
	case key.Matches(msg, r.keys.IncreaseMore):
		target = r.value + 10*step
	case key.Matches(msg, r.keys.Min):
		target = r.bounds.Min
	case key.Matches(msg, r.keys.Max):
		target = r.bounds.Max
	default:
		return nil, false
	}

	next := r.bounds.Clamp(target)
	if next == r.value || r.onChange == nil {
		return nil, true
	}
	return emit(r.onChange(next)), true
}

// Bindings lists the keys for the help footer.
func (r *RangeControl) Bindings() []key.Binding {
	return []key.Binding{r.keys.Decrease, r.keys.Increase, r.keys.DecreaseMore, r.keys.IncreaseMore}
}

// View renders the control.
func (r *RangeControl) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders "label: track readout".
func (r *RangeControl) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	readout := TypographyStyle(theme, TypographyVariantReadout).Render(strconv.Itoa(r.value) + "px")
	return controlRow(theme, r.label, r.focused, r.renderTrack(theme)+" "+readout)
}

// thumbIndex maps the value onto a track cell.
func (r *RangeControl) thumbIndex() int {
	span := r.bounds.Max - r.bounds.Min
	if span <= 0 {
		return 0
	}
	v := min(max(r.value, r.bounds.Min), r.bounds.Max)
	return (v - r.bounds.Min) * (r.track - 1) / span
}

func (r *RangeControl) renderTrack(theme Theme) string {
	thumb := r.thumbIndex()
	filled := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	empty := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)
	knob := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Contrast).Bold(true)
	if r.focused {
		knob = knob.Foreground(theme.Palette.Primary.Base)
	}

	var b strings.Builder
	b.WriteString(filled.Render(strings.Repeat("━", thumb)))
	b.WriteString(knob.Render("●"))
	b.WriteString(empty.Render(strings.Repeat("─", r.track-thumb-1)))
	return b.String()
}
