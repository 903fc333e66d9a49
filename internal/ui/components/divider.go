package components

import (
	"strings"
)

const defaultDividerWidth = 40

// Divider is a horizontal rule between page sections.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the context width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Width falls back to the context width
// and then to 40 columns.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	style := Foreground(PaletteNeutral)(d.ComputeStyle(ctx.Theme), ctx.Theme)
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the rule character. Empty strings are ignored.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the rule width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}
