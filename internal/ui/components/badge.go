package components

import (
	"github.com/charmbracelet/lipgloss"
)

// BadgeVariant selects the palette a badge is drawn with.
type BadgeVariant int

const (
	BadgeVariantNeutral BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantDanger
)

// Badge is a short inline status label, such as the carousel's auto-play
// indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	if b.text == "" {
		return ""
	}
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).Padding(0, 1).Bold(true)
	switch b.variant {
	case BadgeVariantPrimary:
		return Background(PalettePrimary)(style, theme)
	case BadgeVariantSuccess:
		return Background(PaletteSuccess)(style, theme)
	case BadgeVariantDanger:
		return Background(PaletteDanger)(style, theme)
	default:
		return Background(PaletteNeutral)(style, theme)
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// StatusBadge renders "label: on" in the success palette or "label: off" in
// the neutral one.
func StatusBadge(label string, on bool) *Badge {
	if on {
		return NewBadge(label + ": on").WithVariant(BadgeVariantSuccess)
	}
	return NewBadge(label + ": off")
}
