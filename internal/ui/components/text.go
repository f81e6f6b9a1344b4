package components

import "github.com/charmbracelet/lipgloss"

// Text renders one run of styled text: a column heading, a hint or a status
// message.
type Text struct {
	BaseComponent
	content string
	indent  int
}

// NewText creates a text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context. An empty
// text renders nothing so stacks can skip it.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	if t.content == "" {
		return ""
	}
	style := t.ComputeStyle(ctx.Theme)
	if t.indent > 0 {
		style = style.PaddingLeft(t.indent)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithIndent pads the text on the left by n cells.
func (t *Text) WithIndent(n int) *Text {
	t.indent = max(n, 0)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// HeadingText is an underlined column heading.
func HeadingText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantHeading), underline)
}

// MutedText creates de-emphasised helper text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}

// ErrorText renders a message in the danger colour.
func ErrorText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteDanger), bold)
}

func underline(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Underline(true) }

func bold(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Bold(true) }
