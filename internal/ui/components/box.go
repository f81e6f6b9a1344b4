package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

// Scale maps CSS pixels onto terminal cells.
type Scale struct {
	PxPerColumn int
	PxPerRow    int
}

// DefaultScale is ten pixels per column and twenty per row, which keeps a
// square box roughly square in a typical terminal font.
func DefaultScale() Scale {
	return Scale{PxPerColumn: 10, PxPerRow: 20}
}

// Columns converts a horizontal pixel length to cells, rounding half up.
func (s Scale) Columns(px style.Pixels) int {
	return scaleDown(int(px), s.PxPerColumn)
}

// Rows converts a vertical pixel length to cells, rounding half up.
func (s Scale) Rows(px style.Pixels) int {
	return scaleDown(int(px), s.PxPerRow)
}

func scaleDown(px, per int) int {
	if px <= 0 {
		return 0
	}
	if per <= 0 {
		per = 1
	}
	return (2*px + per) / (2 * per)
}

// BoxElement draws one element of the preview from its style record. The
// output depends only on the record, the label, the children and the
// decoration flags.
type BoxElement struct {
	record   style.Record
	label    string
	children []*BoxElement
	scale    Scale
	emphasis bool
	shadow   bool
}

// NewBoxElement creates a box for record with the given nested boxes.
func NewBoxElement(record style.Record, label string, children ...*BoxElement) *BoxElement {
	return &BoxElement{
		record:   record,
		label:    label,
		children: children,
		scale:    DefaultScale(),
		shadow:   true,
	}
}

// WithScale sets the pixel to cell mapping for this box and its children.
func (b *BoxElement) WithScale(scale Scale) *BoxElement {
	b.scale = scale
	for _, child := range b.children {
		child.WithScale(scale)
	}
	return b
}

// WithEmphasis draws the box in its highlighted state.
func (b *BoxElement) WithEmphasis(on bool) *BoxElement {
	b.emphasis = on
	return b
}

// WithShadow toggles the drop shadow for this box and its children.
func (b *BoxElement) WithShadow(on bool) *BoxElement {
	b.shadow = on
	for _, child := range b.children {
		child.WithShadow(on)
	}
	return b
}

// Record returns the style the box is drawn from.
func (b *BoxElement) Record() style.Record { return b.record }

// Display returns the box's display keyword.
func (b *BoxElement) Display() style.Display { return b.record.Display }

// Children returns the nested boxes.
func (b *BoxElement) Children() []*BoxElement { return b.children }

// Title returns the label line, including a position tag when the box is
// not statically positioned.
func (b *BoxElement) Title() string {
	if b.record.Position == "" || b.record.Position == style.PositionStatic {
		return b.label
	}
	return b.label + " · " + b.record.Position.String()
}

// View renders the box.
func (b *BoxElement) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box, painting its margin with ctx.Surface.
func (b *BoxElement) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	bg := lipgloss.Color(b.record.Background.String())
	fg := contrastOn(b.record.Background)

	content := b.renderContent(ctx.WithSurface(bg), bg, fg)
	innerW := lipgloss.Width(content)
	innerH := lipgloss.Height(content)

	padCols := b.scale.Columns(b.record.Padding)
	padRows := b.scale.Rows(b.record.Padding)

	width, height := innerW, innerH
	if b.record.Display != style.DisplayInline {
		width = max(width, b.scale.Columns(b.record.Width))
		height = max(height, b.scale.Rows(b.record.Height))
	}

	border, borderColor := theme.Borders.Box, theme.Box.Border
	if b.emphasis {
		border, borderColor = theme.Borders.Emphasis, theme.Box.EmphasisBorder
	}

	box := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(padRows, padCols).
		Width(width + 2*padCols).
		Height(height + 2*padRows).
		Border(border).
		BorderForeground(borderColor)
	if ctx.Surface != nil {
		box = box.BorderBackground(ctx.Surface)
	}

	out := box.Render(content)
	if b.shadow {
		out = b.dropShadow(out, theme, ctx.Surface)
	}
	return b.applyMargin(out, ctx.Surface)
}

// renderContent lays out the label and children following the display
// keyword of this box and of each child.
func (b *BoxElement) renderContent(childCtx RenderContext, bg, fg lipgloss.TerminalColor) string {
	label := lipgloss.NewStyle().Background(bg).Foreground(fg).Bold(true).Render(b.Title())

	flex := b.record.Display == style.DisplayFlex
	lines := [][]string{{label}}
	open := true
	for _, child := range b.children {
		view := child.ViewWithContext(childCtx)
		switch {
		case flex, open && child.inlineLevel():
			lines[len(lines)-1] = append(lines[len(lines)-1], view)
		case child.inlineLevel():
			lines = append(lines, []string{view})
			open = true
		default:
			lines = append(lines, []string{view})
			open = false
		}
	}

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, joinRow(line, bg))
	}

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row))
	}
	for i, row := range rows {
		rows[i] = lipgloss.PlaceHorizontal(width, lipgloss.Left, row, lipgloss.WithWhitespaceBackground(bg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *BoxElement) inlineLevel() bool {
	return b.record.Display == style.DisplayInline || b.record.Display == style.DisplayInlineBlock
}

// joinRow places blocks side by side on bg, filling short blocks so no
// terminal default background shows through.
func joinRow(blocks []string, bg lipgloss.TerminalColor) string {
	if len(blocks) == 1 {
		return blocks[0]
	}
	height := 0
	for _, block := range blocks {
		height = max(height, lipgloss.Height(block))
	}
	gap := lipgloss.NewStyle().Background(bg).Render(strings.TrimSuffix(strings.Repeat(" \n", height), "\n"))

	cells := make([]string, 0, 2*len(blocks)-1)
	for i, block := range blocks {
		if i > 0 {
			cells = append(cells, gap)
		}
		cells = append(cells, lipgloss.PlaceVertical(height, lipgloss.Top, block, lipgloss.WithWhitespaceBackground(bg)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// dropShadow draws a one cell shadow down the right edge and along the
// bottom, offset by one cell like a CSS box-shadow.
func (b *BoxElement) dropShadow(box string, theme Theme, surface lipgloss.TerminalColor) string {
	shade := lipgloss.NewStyle().Foreground(theme.Box.Shadow)
	if b.emphasis {
		shade = shade.Foreground(theme.Box.EmphasisShadow)
	}
	blank := lipgloss.NewStyle()
	if surface != nil {
		shade = shade.Background(surface)
		blank = blank.Background(surface)
	}

	char := theme.Box.ShadowChar
	if char == "" {
		char = " "
	}

	width := lipgloss.Width(box)
	lines := strings.Split(box, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = line + blank.Render(" ")
			continue
		}
		lines[i] = line + shade.Render(char)
	}
	lines = append(lines, blank.Render(" ")+shade.Render(strings.Repeat(char, width)))
	return strings.Join(lines, "\n")
}

// applyMargin adds the outer margin. Out-of-flow boxes take no space from
// the parent flow and inline boxes ignore vertical margins.
func (b *BoxElement) applyMargin(box string, surface lipgloss.TerminalColor) string {
	if b.record.Position.OutOfFlow() {
		return box
	}
	cols := b.scale.Columns(b.record.Margin)
	rows := b.scale.Rows(b.record.Margin)
	if b.record.Display == style.DisplayInline {
		rows = 0
	}
	if cols == 0 && rows == 0 {
		return box
	}
	margin := lipgloss.NewStyle().Margin(rows, cols)
	if surface != nil {
		margin = margin.MarginBackground(surface)
	}
	return margin.Render(box)
}

// contrastOn picks a dark or light text color legible on c.
func contrastOn(c style.Color) lipgloss.Color {
	l, _, _ := c.Colorful().Lab()
	if l > 0.6 {
		return lipgloss.Color("#1F2937")
	}
	return lipgloss.Color("#F9FAFB")
}
