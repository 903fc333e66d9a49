package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ThemeMode names the two showcase themes.
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ColourSet is a semantic colour with a readable foreground for it.
//
//   - Base: background or accent colour
//   - OnBase: text drawn on top of Base
//   - Muted: subdued variant for disabled or inactive states
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects one ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderVariant is a strongly-typed border token.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantHeading
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantEmphasis
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// Theme is an immutable set of styling tokens. Themes are values: copy and
// edit them rather than mutating a shared instance.
type Theme struct {
	Mode       ThemeMode
	Palette    Palette
	Typography TypographyScale
}

// DefaultTheme returns the dark theme, matching the showcase's initial state.
func DefaultTheme() Theme {
	return DarkTheme()
}

// DarkTheme returns the theme used on dark terminals.
func DarkTheme() Theme {
	palette := Palette{
		Primary:   ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8"},
		Secondary: ColourSet{Base: "#c084fc", OnBase: "#1f2937", Muted: "#6b21a8"},
		Surface:   ColourSet{Base: "#121212", OnBase: "#f9fafb", Muted: "#1f2937"},
		Success:   ColourSet{Base: "#4ade80", OnBase: "#022c22", Muted: "#15803d"},
		Danger:    ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#b91c1c"},
		Neutral:   ColourSet{Base: "#94a3b8", OnBase: "#0f172a", Muted: "#475569"},
	}
	return Theme{Mode: ThemeDark, Palette: palette, Typography: typographyFor(palette)}
}

// LightTheme returns the theme used on light terminals.
func LightTheme() Theme {
	palette := Palette{
		Primary:   ColourSet{Base: "#2563eb", OnBase: "#f8fafc", Muted: "#93c5fd"},
		Secondary: ColourSet{Base: "#7c3aed", OnBase: "#f8fafc", Muted: "#d8b4fe"},
		Surface:   ColourSet{Base: "#ffffff", OnBase: "#111827", Muted: "#e2e8f0"},
		Success:   ColourSet{Base: "#16a34a", OnBase: "#f8fafc", Muted: "#86efac"},
		Danger:    ColourSet{Base: "#dc2626", OnBase: "#f8fafc", Muted: "#fca5a5"},
		Neutral:   ColourSet{Base: "#64748b", OnBase: "#f1f5f9", Muted: "#cbd5e1"},
	}
	return Theme{Mode: ThemeLight, Palette: palette, Typography: typographyFor(palette)}
}

// ThemeFor returns the theme for mode, defaulting to dark.
func ThemeFor(mode ThemeMode) Theme {
	if mode == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

func typographyFor(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Heading:  body.Bold(true),
		Caption:  body.Foreground(p.Neutral.Base).Faint(true),
		Code:     body.Foreground(p.Secondary.Base),
		Emphasis: body.Bold(true),
	}
}

// BorderFor returns the lipgloss border for variant.
func BorderFor(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return lipgloss.NormalBorder()
	case BorderVariantRounded:
		return lipgloss.RoundedBorder()
	case BorderVariantThick:
		return lipgloss.ThickBorder()
	case BorderVariantDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantHeading:
		return typo.Heading
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// Background applies a semantic background colour and its matching foreground.
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

// Border applies a border drawn in the given palette slot.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderFor(variant)).BorderForeground(slot(theme.Palette).Base)
	}
}

func PaddingX(cells int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(cells).PaddingRight(cells)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
