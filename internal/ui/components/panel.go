package components

import (
	"github.com/alexisbeaulieu97/boxlab/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered section with an optional header above its children.
type Panel struct {
	BaseComponent
	header   ui.Renderable
	children []ui.Renderable
	padding  Spacing
}

// NewPanel creates a new panel with a rounded border and one cell of
// horizontal padding.
func NewPanel(children ...ui.Renderable) *Panel {
	p := &Panel{
		BaseComponent: NewBaseComponent(),
		children:      children,
		padding:       SymmetricSpacing(0, 1),
	}
	p.SetAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.Panel).BorderForeground(theme.Palette.Neutral.Muted)
	})
	return p
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel with layout context.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	style := p.ComputeStyle(ctx.Theme).
		Padding(p.padding.Top, p.padding.Right, p.padding.Bottom, p.padding.Left)

	inner := ctx
	if ctx.MaxWidth > 0 {
		frame := style.GetHorizontalFrameSize()
		inner = ctx.WithMaxWidth(max(ctx.MaxWidth-frame, 1))
		style = style.Width(max(ctx.MaxWidth-style.GetHorizontalBorderSize(), 1))
	}

	rows := make([]ui.Renderable, 0, len(p.children)+1)
	if p.header != nil {
		rows = append(rows, p.header)
	}
	rows = append(rows, p.children...)

	return style.Render(VStack(rows...).ViewWithContext(inner))
}

// WithHeader sets the header rendered above the children.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

// WithTitle is a convenience method to add a text header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeader(title))
}
