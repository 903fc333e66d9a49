package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the palette a button is drawn with.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantGhost
)

// Button is a focusable, optionally disabled label with an optional icon.
type Button struct {
	BaseComponent
	label    string
	endIcon  string
	variant  ButtonVariant
	disabled bool
	focused  bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	content := b.label
	if b.endIcon != "" {
		content += " " + b.endIcon
	}
	return b.computeStyle(ctx.Theme).Render(content)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).Padding(0, 2)

	if b.disabled {
		muted := theme.Palette.Neutral
		return style.Background(muted.Muted).Foreground(muted.Base).Faint(true)
	}

	switch b.variant {
	case ButtonVariantSecondary:
		style = Background(PaletteSecondary)(style, theme)
	case ButtonVariantSuccess:
		style = Background(PaletteSuccess)(style, theme)
	case ButtonVariantDanger:
		style = Background(PaletteDanger)(style, theme)
	case ButtonVariantGhost:
		style = style.Foreground(theme.Palette.Surface.OnBase)
	default:
		style = Background(PalettePrimary)(style, theme)
	}

	if b.focused {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithEndIcon places icon after the label.
func (b *Button) WithEndIcon(icon string) *Button {
	b.endIcon = icon
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocus sets the focus state.
func (b *Button) WithFocus(focused bool) *Button {
	b.focused = focused
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsFocused reports whether the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// GhostButton creates a button without a background.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
