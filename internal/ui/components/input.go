package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

const defaultInputWidth = 36

// InputField frames an editable value with a label, optional icons and an
// error line. The value is drawn by the caller, typically a
// bubbles/textinput view, so the field never owns editing state.
type InputField struct {
	BaseComponent
	label     string
	value     string
	iconLeft  string
	iconRight string
	errText   string
	required  bool
	focused   bool
	width     int
}

// NewInputField creates a field showing value under label.
func NewInputField(label, value string) *InputField {
	return &InputField{
		BaseComponent: NewBaseComponent(),
		label:         label,
		value:         value,
		width:         defaultInputWidth,
	}
}

// View renders the field with the default theme.
func (f *InputField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field with the given theme context.
func (f *InputField) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	label := f.label
	if f.required {
		label += " *"
	}

	width := f.width
	if ctx.Width > 0 {
		width = min(width, ctx.Width)
	}
	// Border and padding take four columns.
	inner := max(width-4, 1)

	content := f.value
	if f.iconLeft != "" {
		content = f.iconLeft + " " + content
	}
	if f.iconRight != "" {
		// Pin the right icon to the inner edge.
		left := max(inner-lipgloss.Width(f.iconRight)-1, 0)
		content = lipgloss.NewStyle().Width(left).MaxWidth(left).Render(content) + " " + f.iconRight
	}

	box := f.ComputeStyle(theme).Padding(0, 1).Width(inner + 2)
	box = Border(BorderVariantRounded, f.borderSlot())(box, theme)

	children := []ui.Renderable{HeadingText(label), ui.String(box.Render(content))}
	if f.errText != "" {
		children = append(children, ErrorAlert(f.errText).WithBorder(false))
	}
	return VStack(children...).ViewWithContext(ctx)
}

func (f *InputField) borderSlot() PaletteSlot {
	switch {
	case f.errText != "":
		return PaletteDanger
	case f.focused:
		return PalettePrimary
	default:
		return PaletteNeutral
	}
}

// WithIcons places icons before and after the value. Empty strings omit
// that side.
func (f *InputField) WithIcons(left, right string) *InputField {
	f.iconLeft, f.iconRight = left, right
	return f
}

// WithRequired marks the label as required.
func (f *InputField) WithRequired(required bool) *InputField {
	f.required = required
	return f
}

// WithError sets the message shown under the field. Empty clears it.
func (f *InputField) WithError(msg string) *InputField {
	f.errText = msg
	return f
}

// WithFocus sets the focus state.
func (f *InputField) WithFocus(focused bool) *InputField {
	f.focused = focused
	return f
}

// WithWidth sets the outer width of the field box.
func (f *InputField) WithWidth(width int) *InputField {
	if width > 0 {
		f.width = width
	}
	return f
}

// Label returns the field label.
func (f *InputField) Label() string {
	return f.label
}

// Error returns the current error message.
func (f *InputField) Error() string {
	return f.errText
}
