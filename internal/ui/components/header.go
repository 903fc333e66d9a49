package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the page title bar: a title, an optional subtitle and an
// optional right-aligned action hint.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	action   string
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// WithSubtitle sets the line shown under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAction sets the hint shown at the right edge of the title line.
func (h *Header) WithAction(action string) *Header {
	h.action = action
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// View renders the header with the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header. With a known width the action is
// pushed to the right edge; otherwise it follows the title after a gap.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	title := TypographyStyle(theme, TypographyVariantTitle).Render(h.title)

	line := title
	if h.action != "" {
		action := TypographyStyle(theme, TypographyVariantCaption).Render(h.action)
		gap := 2
		if ctx.Width > 0 {
			gap = max(ctx.Width-lipgloss.Width(title)-lipgloss.Width(action), 2)
		}
		line = title + strings.Repeat(" ", gap) + action
	}

	if h.subtitle != "" {
		subtitle := TypographyStyle(theme, TypographyVariantCaption).Render(h.subtitle)
		line = lipgloss.JoinVertical(lipgloss.Left, line, subtitle)
	}
	return h.ComputeStyle(theme).Render(line)
}
