package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

// Section is a titled block of showcase content followed by an optional
// code sample.
type Section struct {
	BaseComponent
	title   string
	content []ui.Renderable
	code    *CodeBlock
}

// NewSection creates a section with the given heading and content.
func NewSection(title string, content ...ui.Renderable) *Section {
	return &Section{
		BaseComponent: NewBaseComponent(),
		title:         title,
		content:       content,
	}
}

// WithCode attaches a code sample shown under the content.
func (s *Section) WithCode(code string) *Section {
	s.code = NewCodeBlock(code)
	return s
}

// View renders the section with the default theme.
func (s *Section) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the section with the given theme context.
func (s *Section) ViewWithContext(ctx RenderContext) string {
	children := []ui.Renderable{HeadingText(s.title)}
	children = append(children, s.content...)
	if s.code != nil {
		children = append(children, s.code)
	}

	body := VStack(children...).WithGap(1).ViewWithContext(ctx)
	return s.ComputeStyle(ctx.Theme).MarginBottom(1).Render(body)
}
