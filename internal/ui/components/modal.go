package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

const defaultModalWidth = 44

// Modal is a dialog card drawn over the page while open. It renders nothing
// when closed, so callers can keep one around and toggle it.
type Modal struct {
	BaseComponent
	title   string
	content []ui.Renderable
	footer  string
	width   int
	open    bool
}

// NewModal creates a closed modal with a title and body content.
func NewModal(title string, content ...ui.Renderable) *Modal {
	return &Modal{
		BaseComponent: NewBaseComponent(),
		title:         title,
		content:       content,
		footer:        "press esc to close",
		width:         defaultModalWidth,
	}
}

// View renders the modal with the default theme.
func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the modal with the given theme context.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	if !m.open {
		return ""
	}

	width := m.width
	if ctx.Width > 0 {
		width = min(width, ctx.Width)
	}
	// Border and padding take six columns.
	inner := max(width-6, 1)
	innerCtx := ctx.WithWidth(inner)

	children := []ui.Renderable{TitleText(m.title)}
	children = append(children, m.content...)
	if m.footer != "" {
		children = append(children, NewDivider().WithWidth(inner), CaptionText(m.footer))
	}
	body := VStack(children...).WithGap(1).ViewWithContext(innerCtx)

	style := m.ComputeStyle(ctx.Theme).Padding(1, 2).Width(width - 2)
	style = Border(BorderVariantRounded, PalettePrimary)(style, ctx.Theme)
	return Background(PaletteSurface)(style, ctx.Theme).Render(body)
}

// WithOpen sets whether the modal is shown.
func (m *Modal) WithOpen(open bool) *Modal {
	m.open = open
	return m
}

// WithFooter replaces the hint shown under the content. An empty footer
// hides the hint and its divider.
func (m *Modal) WithFooter(footer string) *Modal {
	m.footer = footer
	return m
}

// WithWidth sets the outer width of the dialog.
func (m *Modal) WithWidth(width int) *Modal {
	if width > 0 {
		m.width = width
	}
	return m
}

// IsOpen reports whether the modal is shown.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Title returns the modal title.
func (m *Modal) Title() string {
	return m.title
}
