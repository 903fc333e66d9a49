package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPaginationItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{name: "first page", current: 1, total: 10, want: []int{1, 2, ellipsis, 10}},
		{name: "near start", current: 3, total: 10, want: []int{1, 2, 3, 4, ellipsis, 10}},
		{name: "middle", current: 5, total: 10, want: []int{1, ellipsis, 4, 5, 6, ellipsis, 10}},
		{name: "last page", current: 10, total: 10, want: []int{1, ellipsis, 9, 10}},
		{name: "few pages", current: 2, total: 3, want: []int{1, 2, 3}},
		{name: "current clamped high", current: 42, total: 4, want: []int{1, ellipsis, 3, 4}},
		{name: "current clamped low", current: -3, total: 2, want: []int{1, 2}},
		{name: "no pages", current: 1, total: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.current, tt.total).Items())
		})
	}
}

func TestPaginationView(t *testing.T) {
	t.Parallel()

	out := NewPagination(5, 10).View()
	assert.Contains(t, out, "‹ Prev")
	assert.Contains(t, out, "Next ›")
	assert.Contains(t, out, "…")
	assert.Contains(t, out, " 5 ")

	assert.Empty(t, NewPagination(1, 0).View())
	assert.Equal(t, []int{1, ellipsis, 5, ellipsis, 10}, NewPagination(5, 10).WithSiblings(0).Items())
}

func TestButtonView(t *testing.T) {
	t.Parallel()

	b := PrimaryButton("Next").WithEndIcon("→")
	assert.Equal(t, "  Next →  ", b.View())
	assert.Equal(t, "Next", b.Label())

	disabled := SecondaryButton("Save").WithDisabled(true).WithFocus(true)
	assert.True(t, disabled.IsDisabled())
	assert.True(t, disabled.IsFocused())
	assert.Equal(t, "  Save  ", disabled.View())
}

func TestStackGap(t *testing.T) {
	t.Parallel()

	v := VStack(NewText("a"), NewText("b")).WithGap(2)
	assert.Equal(t, 4, lipgloss.Height(v.View()))
	assert.Equal(t, 2, lipgloss.Height(VStack(NewText("a"), NewText("b")).View()))

	h := HStack(NewText("a"), NewText("b")).WithGap(3)
	assert.Equal(t, "a   b", h.View())
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	s := VStack(NewText("a"), NewPagination(1, 0), NewText("b")).WithGap(1)
	assert.Equal(t, 3, lipgloss.Height(s.View()))
	assert.Empty(t, VStack().View())
}

func TestCodeBlock(t *testing.T) {
	t.Parallel()

	out := NewCodeBlock("\nfoo()\nbar()\n").View()
	assert.Contains(t, out, "1 foo()")
	assert.Contains(t, out, "2 bar()")
	assert.Equal(t, 4, lipgloss.Height(out))

	plain := NewCodeBlock("foo()").WithLineNumbers(false).View()
	assert.NotContains(t, plain, "1 ")
	assert.Empty(t, NewCodeBlock("\n\n").View())
}

func TestSectionIncludesCode(t *testing.T) {
	t.Parallel()

	out := NewSection("Buttons", NewText("body")).WithCode("Button()").View()
	assert.True(t, strings.HasPrefix(out, "Buttons"))
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "Button()")
}

func TestHeaderPushesActionRight(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithWidth(30)
	out := NewHeader("Title").WithAction("t theme").ViewWithContext(ctx)
	assert.Equal(t, 30, lipgloss.Width(out))
	assert.True(t, strings.HasSuffix(out, "t theme"))

	withSub := NewHeader("Title").WithSubtitle("sub").View()
	assert.Equal(t, 2, lipgloss.Height(withSub))
}

func TestStatusBadge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " auto-play: on ", StatusBadge("auto-play", true).View())
	assert.Equal(t, " auto-play: off ", StatusBadge("auto-play", false).View())
	assert.Empty(t, NewBadge("").View())
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultDividerWidth, lipgloss.Width(NewDivider().View()))
	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(DefaultContext().WithWidth(12))))
	assert.Equal(t, "===", NewDivider().WithChar("=").WithWidth(3).View())
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeFor(ThemeLight).Mode)
	assert.Equal(t, ThemeDark, ThemeFor("sepia").Mode)
}

func TestAlertView(t *testing.T) {
	t.Parallel()

	inline := ErrorAlert("Password is required").WithBorder(false)
	assert.Equal(t, "✗ Password is required", inline.View())

	boxed := SuccessAlert("Saved").View()
	assert.Contains(t, boxed, "✓ Saved")
	assert.Contains(t, boxed, "┌")
	assert.Equal(t, 3, lipgloss.Height(boxed))

	assert.Contains(t, InfoAlert("Heads up").View(), "ℹ Heads up")
	assert.Empty(t, NewAlert("").View())
}

func TestModalView(t *testing.T) {
	t.Parallel()

	m := NewModal("Hello from Modal!", NewText("This is modal content."))
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.View(), "a closed modal renders nothing")

	out := m.WithOpen(true).View()
	assert.Contains(t, out, "Hello from Modal!")
	assert.Contains(t, out, "This is modal content.")
	assert.Contains(t, out, "press esc to close")
	assert.Contains(t, out, "╭")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, defaultModalWidth, lipgloss.Width(line))
	}

	narrow := m.ViewWithContext(DefaultContext().WithWidth(24))
	assert.Equal(t, 24, lipgloss.Width(narrow))

	bare := NewModal("Plain").WithOpen(true).WithFooter("").View()
	assert.NotContains(t, bare, "press esc to close")
}

func TestInputFieldView(t *testing.T) {
	t.Parallel()

	email := NewInputField("Email", "example@gmail.com").
		WithRequired(true).
		WithIcons("✉", "").
		WithFocus(true)
	out := email.View()
	assert.Contains(t, out, "Email *")
	assert.Contains(t, out, "✉ example@gmail.com")
	assert.Contains(t, out, "╭")
	assert.NotContains(t, out, "✗")
	assert.Equal(t, 4, lipgloss.Height(out))

	password := NewInputField("Password", "••••").WithError("Password is required")
	out = password.View()
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Password", strings.TrimSpace(lines[0]), "optional fields have no marker")
	assert.Contains(t, out, "✗ Password is required")
	assert.Equal(t, 5, lipgloss.Height(out))
	assert.Equal(t, "Password is required", password.Error())

	assert.Equal(t, defaultInputWidth, lipgloss.Width(lines[1]), "box has a fixed width")
}

func TestCheckboxView(t *testing.T) {
	t.Parallel()

	c := NewCheckbox("I accept the terms and conditions")
	assert.Equal(t, "[ ] I accept the terms and conditions", c.View())

	c.WithChecked(true).WithFocus(true)
	assert.True(t, c.IsChecked())
	assert.Equal(t, "[x] I accept the terms and conditions", c.View())
}

func TestRadioGroupView(t *testing.T) {
	t.Parallel()

	r := NewRadioGroup("Choose a plan", "Free", "Pro", "Enterprise")
	assert.Equal(t, -1, r.Selected())
	out := r.View()
	assert.Contains(t, out, "Choose a plan")
	assert.Equal(t, 3, strings.Count(out, "( )"))

	out = r.WithSelected(1).View()
	assert.Contains(t, out, "(•) Pro")
	assert.Contains(t, out, "( ) Free")

	assert.Equal(t, -1, r.WithSelected(3).Selected())
	assert.Equal(t, []string{"Free", "Pro", "Enterprise"}, r.Options())
}
