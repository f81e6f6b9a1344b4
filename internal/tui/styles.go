package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boxlab/internal/ui/components"
)

const (
	appTitle    = "Interactive CSS Learning App"
	appSubtitle = "Adjust the box model of three nested elements and watch the preview follow."
	statusHint  = "tab moves between controls, ←/→ change the focused value"
)

func titleStyle(theme components.Theme) lipgloss.Style {
	return components.TypographyStyle(theme, components.TypographyVariantTitle).
		PaddingLeft(1).
		MarginBottom(1)
}

func previewContainerStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(theme.Borders.Preview).
		BorderForeground(theme.Palette.Neutral.Base).
		Padding(1, 2)
}
