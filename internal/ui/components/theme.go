package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: the accent or brand color
//   - OnBase: text color that stays legible on Base
//   - Muted: a pale tint of Base for panel backgrounds
//   - Contrast: a darker shade used for headings on Muted
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Panel    lipgloss.Border
	Preview  lipgloss.Border
	Box      lipgloss.Border
	Emphasis lipgloss.Border
}

// BoxDecoration holds the fixed decorative colors drawn around preview boxes.
type BoxDecoration struct {
	Border         lipgloss.AdaptiveColor
	EmphasisBorder lipgloss.AdaptiveColor
	Shadow         lipgloss.AdaptiveColor
	EmphasisShadow lipgloss.AdaptiveColor
	ShadowChar     string
}

// TypographyScale contains the text presets used across the app.
type TypographyScale struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Label    lipgloss.Style
	Readout  lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantTitle TypographyVariant = iota
	TypographyVariantHeading
	TypographyVariantLabel
	TypographyVariantReadout
	TypographyVariantMuted
	TypographyVariantSelected
)

// Theme represents an immutable styling theme for components.
type Theme struct {
	Palette    Palette
	Accents    [3]ColourSet
	Borders    BorderSet
	Box        BoxDecoration
	Typography TypographyScale
}

// Accent returns the colour set that identifies role in panels and the preview.
func (t Theme) Accent(role style.Role) ColourSet {
	if role < style.Parent || role > style.Grandchild {
		return t.Palette.Primary
	}
	return t.Accents[role]
}

// DefaultTheme returns the indigo/green/pink theme of the learning app.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#4f46e5", "#818cf8"),
			OnBase:   ac("#ffffff", "#1e1b4b"),
			Muted:    ac("#e0e7ff", "#312e81"),
			Contrast: ac("#3730a3", "#c7d2fe"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#f5f3ff", "#1f2937"),
			Contrast: ac("#4338ca", "#a5b4fc"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#fee2e2", "#7f1d1d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#e2e8f0", "#334155"),
			Contrast: ac("#334155", "#e2e8f0"),
		},
	}

	accents := [3]ColourSet{
		style.Parent: palette.Primary,
		style.Child: {
			Base:     ac("#16a34a", "#4ade80"),
			OnBase:   ac("#ffffff", "#052e16"),
			Muted:    ac("#f0fdf4", "#14532d"),
			Contrast: ac("#166534", "#bbf7d0"),
		},
		style.Grandchild: {
			Base:     ac("#db2777", "#f472b6"),
			OnBase:   ac("#ffffff", "#500724"),
			Muted:    ac("#fdf2f8", "#831843"),
			Contrast: ac("#9d174d", "#fbcfe8"),
		},
	}

	text := lipgloss.NewStyle().Foreground(palette.Surface.OnBase)

	return Theme{
		Palette: palette,
		Accents: accents,
		Borders: BorderSet{
			Panel:    lipgloss.RoundedBorder(),
			Preview:  dashedBorder(),
			Box:      lipgloss.RoundedBorder(),
			Emphasis: lipgloss.ThickBorder(),
		},
		Box: BoxDecoration{
			Border:         ac("#c7d2fe", "#6366f1"),
			EmphasisBorder: ac("#4f46e5", "#a5b4fc"),
			Shadow:         ac("#d1d5db", "#374151"),
			EmphasisShadow: ac("#6b7280", "#9ca3af"),
			ShadowChar:     "░",
		},
		Typography: TypographyScale{
			Title:    text.Bold(true).Foreground(palette.Primary.Contrast),
			Heading:  text.Bold(true).Foreground(palette.Surface.Contrast),
			Label:    text.Bold(true).Foreground(palette.Primary.Base).Width(12),
			Readout:  text.Foreground(palette.Primary.Contrast).Background(palette.Primary.Muted).Padding(0, 1),
			Muted:    text.Foreground(palette.Neutral.Base),
			Selected: text.Bold(true).Foreground(palette.Primary.OnBase).Background(palette.Primary.Base).Padding(0, 1),
		},
	}
}

// dashedBorder approximates CSS "border-style: dashed".
func dashedBorder() lipgloss.Border {
	return lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantHeading:
		return typo.Heading
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantReadout:
		return typo.Readout
	case TypographyVariantSelected:
		return typo.Selected
	default:
		return typo.Muted
	}
}

// Background applies a semantic background colour and matching foreground for optimal contrast.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// AccentBorder draws a panel border in the accent colour of role.
func AccentBorder(role style.Role) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.Panel).BorderForeground(theme.Accent(role).Base)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
