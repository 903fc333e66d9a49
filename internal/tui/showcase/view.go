package showcase

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

const pageGap = 1

// View renders the page, or the modal centred on screen while it is open.
func (m Model) View() string {
	if m.modalOpen {
		return m.overlay()
	}

	footer := ui.String(m.help.View(m.keys))
	if !m.ready() {
		return components.VStack(append(m.sections(), footer)...).WithGap(pageGap).ViewWithContext(m.context())
	}

	vp := m.viewport
	vp.SetContent(m.body())
	return components.VStack(ui.String(vp.View()), footer).WithGap(pageGap).ViewWithContext(m.context())
}

func (m Model) overlay() string {
	modal := demoModal().WithOpen(true).ViewWithContext(m.context())
	if !m.ready() {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) body() string {
	return components.VStack(m.sections()...).WithGap(pageGap).ViewWithContext(m.context())
}

func (m Model) sections() []ui.Renderable {
	return append(m.sectionsAbove(), sliderSection(ui.String(m.carousel.View())))
}

// sectionsAbove returns everything drawn before the slider section.
func (m Model) sectionsAbove() []ui.Renderable {
	return []ui.Renderable{
		header(m.title, m.mode),
		buttonSection(m.clicks, m.focus == focusButton),
		paginationSection(m.Page()),
		modalSection(m.focus == focusModal, false),
		planSection(m.plan, m.focus == focusPlan),
		termsSection(m.terms, m.focus == focusTerms),
		inputSection(m.form, m.focus),
	}
}

// sectionIndex is the position in sections of the control owning f.
func sectionIndex(f focusTarget) int {
	switch f {
	case focusModal:
		return 3
	case focusPlan:
		return 4
	case focusTerms:
		return 5
	case focusEmail, focusPassword:
		return 6
	default:
		return 1
	}
}

// sectionTop is the page row where section i starts. i may be the slider
// section, which follows every section above it.
func (m Model) sectionTop(i int) int {
	above := m.sectionsAbove()
	i = min(i, len(above))
	if i == 0 {
		return 0
	}
	rendered := components.VStack(above[:i]...).WithGap(pageGap).ViewWithContext(m.context())
	return lipgloss.Height(rendered) + pageGap
}

// carouselTop is the page row where the slider starts.
func (m Model) carouselTop() int {
	return m.sectionTop(len(m.sectionsAbove())) + sliderSectionOffset
}

func (m Model) ready() bool {
	return m.width > 0 && m.height > 0
}
