package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ellipsis marks a gap in the page list.
const ellipsis = 0

// Pagination renders a page selector: previous/next controls around page
// numbers, with gaps collapsed to an ellipsis. Pages are 1-based.
type Pagination struct {
	BaseComponent
	current int
	total   int
	sibling int
}

// NewPagination creates a pagination control. current is clamped into
// [1, total].
func NewPagination(current, total int) *Pagination {
	if total < 0 {
		total = 0
	}
	current = min(max(current, 1), max(total, 1))
	return &Pagination{
		BaseComponent: NewBaseComponent(),
		current:       current,
		total:         total,
		sibling:       1,
	}
}

// WithSiblings sets how many pages either side of the current one are listed.
func (p *Pagination) WithSiblings(n int) *Pagination {
	if n < 0 {
		n = 0
	}
	p.sibling = n
	return p
}

// Current returns the selected page.
func (p *Pagination) Current() int {
	return p.current
}

// Items lists the page numbers to draw in order. Zero entries are gaps.
func (p *Pagination) Items() []int {
	if p.total == 0 {
		return nil
	}

	lo := max(p.current-p.sibling, 1)
	hi := min(p.current+p.sibling, p.total)

	var items []int
	if lo > 1 {
		items = append(items, 1)
		if lo > 2 {
			items = append(items, ellipsis)
		}
	}
	for page := lo; page <= hi; page++ {
		items = append(items, page)
	}
	if hi < p.total {
		if hi < p.total-1 {
			items = append(items, ellipsis)
		}
		items = append(items, p.total)
	}
	return items
}

// View renders the pagination with the default theme.
func (p *Pagination) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the pagination with the given theme context.
func (p *Pagination) ViewWithContext(ctx RenderContext) string {
	if p.total == 0 {
		return ""
	}

	theme := ctx.Theme
	plain := TypographyStyle(theme, TypographyVariantBody).Padding(0, 1)
	active := Background(PalettePrimary)(lipgloss.NewStyle().Bold(true).Padding(0, 1), theme)
	disabled := plain.Foreground(theme.Palette.Neutral.Muted)

	control := func(label string, enabled bool) string {
		if enabled {
			return plain.Render(label)
		}
		return disabled.Render(label)
	}

	parts := []string{control("‹ Prev", p.current > 1)}
	for _, page := range p.Items() {
		switch {
		case page == ellipsis:
			parts = append(parts, disabled.Render("…"))
		case page == p.current:
			parts = append(parts, active.Render(strconv.Itoa(page)))
		default:
			parts = append(parts, plain.Render(strconv.Itoa(page)))
		}
	}
	parts = append(parts, control("Next ›", p.current < p.total))

	return p.ComputeStyle(theme).Render(strings.Join(parts, ""))
}
