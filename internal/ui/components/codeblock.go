package components

import (
	"fmt"
	"strings"
)

// CodeBlock renders a source sample with line numbers inside a border.
// Highlighting is limited to the theme's code colour.
type CodeBlock struct {
	BaseComponent
	code        string
	lineNumbers bool
}

// NewCodeBlock creates a code block. Surrounding blank lines are trimmed.
func NewCodeBlock(code string) *CodeBlock {
	return &CodeBlock{
		BaseComponent: NewBaseComponent(),
		code:          strings.Trim(code, "\n"),
		lineNumbers:   true,
	}
}

// WithLineNumbers toggles the line number gutter.
func (c *CodeBlock) WithLineNumbers(enabled bool) *CodeBlock {
	c.lineNumbers = enabled
	return c
}

// View renders the block with the default theme.
func (c *CodeBlock) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the block with the given theme context.
func (c *CodeBlock) ViewWithContext(ctx RenderContext) string {
	if c.code == "" {
		return ""
	}

	theme := ctx.Theme
	code := TypographyStyle(theme, TypographyVariantCode)
	gutter := TypographyStyle(theme, TypographyVariantCaption)

	lines := strings.Split(c.code, "\n")
	width := len(fmt.Sprint(len(lines)))

	rendered := make([]string, len(lines))
	for i, line := range lines {
		if c.lineNumbers {
			rendered[i] = gutter.Render(fmt.Sprintf("%*d ", width, i+1)) + code.Render(line)
		} else {
			rendered[i] = code.Render(line)
		}
	}

	style := Border(BorderVariantRounded, PaletteNeutral)(c.ComputeStyle(theme), theme).Padding(0, 1)
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return style.Render(strings.Join(rendered, "\n"))
}
