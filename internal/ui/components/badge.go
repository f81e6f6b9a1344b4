package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

// Badge is a small inline tag, used for the element a status message refers to.
type Badge struct {
	BaseComponent
	text string
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
	b.SetStyle(lipgloss.NewStyle().Padding(0, 1).Bold(true))
	b.SetAppliers(Background(PalettePrimary))
	return b
}

// RoleBadge creates a badge coloured with the accent of role.
func RoleBadge(role style.Role) *Badge {
	return NewBadge(role.String()).WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		accent := theme.Accent(role)
		return base.Background(accent.Base).Foreground(accent.OnBase)
	})
}

// ErrorBadge creates a badge in the danger colour.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithAppliers(Background(PaletteDanger))
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.text)
}

// WithAppliers appends theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
