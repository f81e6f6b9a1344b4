package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
	"github.com/alexisbeaulieu97/boxlab/internal/ui/components"
)

// View renders the current model state.
func (m Model) View() string {
	body := m.viewport.View()
	if m.horizontal() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.renderPreview())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// Snapshot renders one static frame at width with every control visible
// and no help footer.
func (m Model) Snapshot(width int) string {
	m.width = width
	controls := m.renderControls()
	preview := m.renderPreview()

	var body string
	if m.horizontal() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, controls, " ", preview)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, controls, preview)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body)
}

func (m Model) context() components.RenderContext {
	return components.DefaultContext().WithTheme(m.opts.Theme)
}

func (m Model) horizontal() bool {
	switch m.opts.Layout {
	case LayoutHorizontal:
		return true
	case LayoutVertical:
		return false
	default:
		return m.width >= controlsWidth+1+lipgloss.Width(m.renderPreview())
	}
}

func (m Model) renderHeader() string {
	theme := m.opts.Theme
	title := components.NewHeader(appTitle).
		WithSubtitle(appSubtitle).
		WithAppliers(components.Typography(components.TypographyVariantTitle)).
		ViewWithContext(m.context())
	return titleStyle(theme).Render(title)
}

func (m Model) renderControls() string {
	ctx := m.context().WithMaxWidth(controlsWidth)
	sections := []string{components.HeadingText("CSS Controls").WithIndent(1).ViewWithContext(ctx)}
	for _, panel := range m.panels {
		sections = append(sections, panel.view(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPreview() string {
	theme := m.opts.Theme
	focusRole := m.FocusedRole()

	box := func(role style.Role, children ...*components.BoxElement) *components.BoxElement {
		return components.NewBoxElement(m.anim.frame(role), role.Title(), children...).
			WithEmphasis(role == focusRole)
	}

	tree := box(style.Parent, box(style.Child, box(style.Grandchild))).
		WithScale(m.opts.Scale).
		WithShadow(m.opts.Shadow)

	container := previewContainerStyle(theme).Render(tree.ViewWithContext(m.context()))
	heading := components.HeadingText("Preview").WithIndent(1).ViewWithContext(m.context())
	return lipgloss.JoinVertical(lipgloss.Left, heading, container)
}

func (m Model) renderStatus() string {
	ctx := m.context()
	if m.status == "" {
		return components.MutedText(statusHint).WithIndent(1).ViewWithContext(ctx)
	}
	badge := components.RoleBadge(m.FocusedRole())
	message := components.MutedText(m.status)
	if m.statusErr {
		badge = components.ErrorBadge("error")
		message = components.ErrorText(m.status)
	}
	return " " + components.HStack(badge, message).WithGap(1).ViewWithContext(ctx)
}

func (m Model) renderFooter() string {
	keys := helpKeys{global: m.keys, control: m.focused().Bindings()}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderStatus(), " "+m.help.View(keys))
}

// refreshViewport lays the scrolling column out for the current size and
// keeps the focused control on screen.
func (m *Model) refreshViewport() {
	content := m.renderControls()
	width := controlsWidth
	if !m.horizontal() {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.renderPreview())
		width = max(m.width, controlsWidth)
	}

	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	m.viewport.Width = width
	m.viewport.Height = max(m.height-chrome, 3)
	m.viewport.SetContent(content)
	m.scrollToFocus(content)
}

func (m *Model) scrollToFocus(content string) {
	line := -1
	for i, l := range strings.Split(content, "\n") {
		if strings.Contains(l, components.FocusMarker) {
			line = i
			break
		}
	}
	if line < 0 {
		return
	}

	top := max(line-1, 0)
	bottom := line + 1
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}
