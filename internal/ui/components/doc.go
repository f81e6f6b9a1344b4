// Package components provides the theme-aware widgets boxlab is drawn with.
//
// # Overview
//
// Every component renders to a string with lipgloss. Themes are immutable and
// travel through RenderContext rather than global state:
//
//	ctx := components.DefaultContext().WithTheme(components.DefaultTheme())
//	output := component.ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// # Layout components
//
//   - Text, Header, Badge: styled text
//   - Stack: vertical or horizontal arrangement with gaps
//   - Panel: bordered section with an optional header
//
// # Controls
//
// RangeControl, ColorControl and ChoiceControl edit one field of a style
// record. They are controlled: a key press produces a tea.Cmd carrying the
// message built by the control's change callback, and the owner pushes the
// accepted value back with SetValue.
//
//	width := components.NewRangeControl("Width", 300, func(v int) tea.Msg {
//		return widthChanged(v)
//	}).WithRange(0, 500, 1)
//
// # Preview
//
// BoxElement draws a style record as a nested terminal box. Pixel lengths
// are converted to cells with a Scale; margins are painted with the
// enclosing box's background taken from RenderContext.Surface.
package components
