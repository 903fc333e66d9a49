package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the icon and palette of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantError
)

// Alert is a short message with a status icon. Bordered alerts stand alone;
// borderless ones sit under another component, such as an input error line.
type Alert struct {
	BaseComponent
	message  string
	variant  AlertVariant
	bordered bool
}

// NewAlert creates a bordered info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		bordered:      true,
	}
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the given theme context. An empty
// message renders nothing.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	if a.message == "" {
		return ""
	}

	slot := a.slot()
	style := a.ComputeStyle(ctx.Theme).Foreground(slot(ctx.Theme.Palette).Base)
	if a.bordered {
		style = Border(BorderVariantNormal, slot)(style.Padding(0, 1), ctx.Theme)
	}
	return style.Render(a.icon() + " " + a.message)
}

func (a *Alert) icon() string {
	switch a.variant {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantError:
		return "✗"
	default:
		return "ℹ"
	}
}

func (a *Alert) slot() PaletteSlot {
	switch a.variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantError:
		return PaletteDanger
	default:
		return PalettePrimary
	}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithBorder toggles the surrounding border.
func (a *Alert) WithBorder(bordered bool) *Alert {
	a.bordered = bordered
	return a
}

// WithStyle sets the lipgloss style directly.
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message)
}
