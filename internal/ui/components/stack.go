package components

import (
	"strings"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with a fixed gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	s := VStack(children...)
	s.direction = DirectionHorizontal
	s.align = lipgloss.Center
	return s
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child with ctx and joins the results.
// Children that render empty are skipped.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return ""
	}

	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(s.align, s.interleave(views, strings.Repeat(" ", s.gap))...))
	}
	// A joined element of n-1 newlines occupies n rows.
	return style.Render(lipgloss.JoinVertical(s.align, s.interleave(views, strings.Repeat("\n", max(s.gap-1, 0)))...))
}

// interleave places sep between views when the stack has a gap.
func (s *Stack) interleave(views []string, sep string) []string {
	if s.gap == 0 || len(views) < 2 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, view)
	}
	return out
}

// WithGap sets the spacing between children in rows or columns.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithAlign sets cross-axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// WithAppliers adds theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
