package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

// Checkbox is a labelled on/off toggle.
type Checkbox struct {
	BaseComponent
	label   string
	checked bool
	focused bool
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the checkbox with the default theme.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders "[x] label" or "[ ] label".
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	return choiceStyle(c.ComputeStyle(ctx.Theme), ctx.Theme, c.checked, c.focused).Render(mark + " " + c.label)
}

// WithChecked sets the checked state.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.checked = checked
	return c
}

// WithFocus sets the focus state.
func (c *Checkbox) WithFocus(focused bool) *Checkbox {
	c.focused = focused
	return c
}

// IsChecked reports whether the box is checked.
func (c *Checkbox) IsChecked() bool {
	return c.checked
}

// RadioGroup is a labelled set of mutually exclusive options.
type RadioGroup struct {
	BaseComponent
	label    string
	options  []string
	selected int
	focused  bool
}

// NewRadioGroup creates a group with nothing selected.
func NewRadioGroup(label string, options ...string) *RadioGroup {
	return &RadioGroup{
		BaseComponent: NewBaseComponent(),
		label:         label,
		options:       options,
		selected:      -1,
	}
}

// View renders the group with the default theme.
func (r *RadioGroup) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label above one "( ) option" per choice.
func (r *RadioGroup) ViewWithContext(ctx RenderContext) string {
	items := make([]ui.Renderable, len(r.options))
	for i, opt := range r.options {
		mark := "( )"
		if i == r.selected {
			mark = "(•)"
		}
		style := choiceStyle(lipgloss.NewStyle(), ctx.Theme, i == r.selected, false)
		items[i] = ui.String(style.Render(mark + " " + opt))
	}

	label := HeadingText(r.label)
	if r.focused {
		label = label.WithStyle(lipgloss.NewStyle().Underline(true))
	}
	body := VStack(label, HStack(items...).WithGap(2)).ViewWithContext(ctx)
	return r.ComputeStyle(ctx.Theme).Render(body)
}

// WithSelected selects the option at index. Out-of-range values clear the
// selection.
func (r *RadioGroup) WithSelected(index int) *RadioGroup {
	if index < 0 || index >= len(r.options) {
		index = -1
	}
	r.selected = index
	return r
}

// WithFocus sets the focus state.
func (r *RadioGroup) WithFocus(focused bool) *RadioGroup {
	r.focused = focused
	return r
}

// Selected returns the selected index, or -1.
func (r *RadioGroup) Selected() int {
	return r.selected
}

// Options returns the option labels.
func (r *RadioGroup) Options() []string {
	return r.options
}

func choiceStyle(base lipgloss.Style, theme Theme, on, focused bool) lipgloss.Style {
	style := base.Foreground(theme.Palette.Surface.OnBase)
	if on {
		style = style.Foreground(theme.Palette.Primary.Base)
	}
	if focused {
		style = style.Bold(true).Underline(true)
	}
	return style
}
