package showcase

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/slider"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

func testOptions() slider.Options {
	opts := slider.DefaultOptions()
	opts.Interval = time.Hour
	opts.SwipeThreshold = 4
	return opts
}

func newTestPage(t *testing.T) (Model, *slider.Engine) {
	t.Helper()

	slides := SlideViews(config.Default().Slides)
	engine := slider.New(len(slides), testOptions())
	m := New(Options{
		Title:  "Showcase",
		Theme:  components.ThemeDark,
		Engine: engine,
		Slides: slides,
	})
	t.Cleanup(func() {
		m.Close()
		engine.Close()
	})
	return m, engine
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	page, ok := next.(Model)
	require.True(t, ok)
	return page, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_ThemeToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	assert.Equal(t, components.ThemeDark, m.Mode())
	assert.Contains(t, m.View(), "t: light mode")

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, components.ThemeLight, m.Mode())
	assert.Contains(t, m.View(), "t: dark mode")

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, components.ThemeDark, m.Mode())
}

func TestUpdate_Pagination(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	assert.Equal(t, 1, m.Page())

	m, _ = update(t, m, runes("["))
	assert.Equal(t, 1, m.Page(), "first page is a lower bound")

	for i := 0; i < TotalPages+3; i++ {
		m, _ = update(t, m, runes("]"))
	}
	assert.Equal(t, TotalPages, m.Page(), "last page is an upper bound")

	m, _ = update(t, m, runes("["))
	assert.Equal(t, TotalPages-1, m.Page())
}

func TestUpdate_ButtonPress(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	assert.NotContains(t, m.View(), "clicked")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.Clicks())
	assert.Contains(t, m.View(), "clicked 2 times")
}

func TestUpdate_ForwardsCarouselKeys(t *testing.T) {
	t.Parallel()

	m, engine := newTestPage(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, engine.Index())
	assert.Equal(t, 1, m.Carousel().State().Index)

	m, _ = update(t, m, runes("3"))
	assert.Equal(t, 2, engine.Index())
	assert.Contains(t, m.View(), "Slide 3")
	assert.NotContains(t, m.View(), "Slide 1")
}

func TestUpdate_ForwardsChangedMsg(t *testing.T) {
	t.Parallel()

	m, engine := newTestPage(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	engine.Advance()
	msg := cmd()
	m, next := update(t, m, msg)
	assert.Equal(t, 1, m.Carousel().State().Index)
	assert.NotNil(t, next)
}

func TestUpdate_QuitAndHelp(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	short := m.View()
	m, _ = update(t, m, runes("?"))
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, m.View(), "go to slide")
}

func TestUpdate_MouseClickUsesPageLayout(t *testing.T) {
	t.Parallel()

	m, engine := newTestPage(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 400})

	top := m.carouselTop()
	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), top)
	assert.Contains(t, lines[top], "╭", "slider frame starts on the computed row")

	// The next arrow is on the frame's middle row, right of the frame.
	row := lines[top+1]
	col := strings.Index(row, "❯")
	require.GreaterOrEqual(t, col, 0)
	x := len([]rune(row[:col]))

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: top + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, tea.MouseMsg{X: x, Y: top + 1, Action: tea.MouseActionRelease})
	assert.Equal(t, 1, engine.Index())
}

func TestUpdate_MouseClickAfterScrolling(t *testing.T) {
	t.Parallel()

	m, engine := newTestPage(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.NotContains(t, m.View(), "❯", "carousel starts below the fold")

	x, y := -1, -1
	for i := 0; i < 50; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
		for i, row := range strings.Split(m.View(), "\n") {
			if col := strings.Index(row, "❯"); col >= 0 {
				x, y = len([]rune(row[:col])), i
			}
		}
		if y >= 0 {
			break
		}
	}
	require.GreaterOrEqual(t, y, 0, "next arrow scrolled into view")
	require.Positive(t, m.viewport.YOffset)

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})
	assert.Equal(t, 1, engine.Index())
}

func TestUpdate_MouseWheelScrolls(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, wheelStep, m.viewport.YOffset)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Zero(t, m.viewport.YOffset, "scrolling stops at the top")
}

func TestView_FitsWindow(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Equal(t, 20, lipgloss.Height(m.View()))

	m, _ = update(t, m, runes("?"))
	assert.Equal(t, 20, lipgloss.Height(m.View()), "full help shrinks the page, not the screen")
}

func tab(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestUpdate_FocusCycle(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	assert.Equal(t, focusButton, m.focus)

	want := []focusTarget{focusModal, focusPlan, focusTerms, focusEmail, focusPassword, focusButton}
	for _, target := range want {
		m = tab(t, m, 1)
		assert.Equal(t, target, m.focus)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusPassword, m.focus, "shift+tab wraps backwards")
	assert.True(t, m.form.inputs[fieldPassword].Focused())
	assert.False(t, m.form.inputs[fieldEmail].Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.form.inputs[fieldPassword].Focused(), "leaving an input blurs it")
}

func TestUpdate_FocusRevealsSection(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.NotContains(t, m.View(), "Email *")

	m = tab(t, m, 4)
	assert.Contains(t, m.View(), "Email *")
	assert.Positive(t, m.viewport.YOffset)
}

func TestUpdate_Modal(t *testing.T) {
	t.Parallel()

	m, engine := newTestPage(t)
	assert.Contains(t, m.View(), "Open Modal")
	assert.NotContains(t, m.View(), "press esc to close", "the modal starts closed")

	m = tab(t, m, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ModalOpen())
	view := m.View()
	assert.Contains(t, view, "Hello from Modal!")
	assert.Contains(t, view, "This is modal content.")
	assert.Contains(t, view, "press esc to close")
	assert.NotContains(t, view, "Pagination", "the modal covers the page")

	// Page and carousel input is blocked while the modal is open.
	m, cmd := update(t, m, runes("q"))
	assert.Nil(t, cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Zero(t, engine.Index())
	assert.True(t, m.ModalOpen())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ModalOpen())
	assert.Contains(t, m.View(), "Pagination")
}

func TestView_ModalIsCentred(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = tab(t, m, 1)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Equal(t, 24, lipgloss.Height(view))
	assert.Equal(t, 80, lipgloss.Width(view))

	lines := strings.Split(view, "\n")
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Empty(t, strings.TrimSpace(lines[len(lines)-1]))
}

func TestUpdate_PlanAndTerms(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	assert.Empty(t, m.Plan())
	assert.Equal(t, 3, strings.Count(m.View(), "( )"))

	// Arrows only pick plans while the group has focus.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.Plan())

	m = tab(t, m, 2)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Free", m.Plan())
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	assert.Equal(t, "Enterprise", m.Plan(), "selection stops at the last plan")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "Pro", m.Plan())
	assert.Contains(t, m.View(), "(•) Pro")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Enterprise", m.Plan(), "enter cycles plans")

	m = tab(t, m, 1)
	assert.Contains(t, m.View(), "[ ] I accept the terms and conditions")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.TermsAccepted())
	assert.Contains(t, m.View(), "[x] I accept the terms and conditions")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.TermsAccepted())
}

func TestUpdate_InputCapturesKeys(t *testing.T) {
	t.Parallel()

	m, engine := newTestPage(t)
	m = tab(t, m, 4)
	require.Equal(t, focusEmail, m.focus)

	m = typeText(t, m, "qt]3")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "qt]3", m.form.value(fieldEmail))
	assert.Equal(t, components.ThemeDark, m.Mode())
	assert.Equal(t, 1, m.Page())
	assert.Zero(t, engine.Index())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_PasswordIsMasked(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	assert.Contains(t, m.View(), "Enter your password")

	m = tab(t, m, 5)
	m = typeText(t, m, "hunter22")
	assert.Equal(t, "hunter22", m.form.value(fieldPassword))
	assert.NotContains(t, m.View(), "hunter22")
	assert.Contains(t, m.View(), "•••••••")
}

func TestUpdate_SignInValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		email       string
		password    string
		emailErr    string
		passwordErr string
	}{
		{name: "empty", emailErr: "Email is required", passwordErr: "Password is required"},
		{name: "malformed email", email: "nope", password: "hunter22", emailErr: "Enter a valid email address"},
		{name: "short password", email: "a@b.io", password: "short", passwordErr: "Password must be at least 8 characters"},
		{name: "valid", email: "ada@example.com", password: "hunter22"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := newTestPage(t)
			m = tab(t, m, 4)
			m = typeText(t, m, tt.email)
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			require.Equal(t, focusPassword, m.focus, "enter moves to the password field")
			m = typeText(t, m, tt.password)
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, tt.emailErr, m.form.errorFor(fieldEmail))
			assert.Equal(t, tt.passwordErr, m.form.errorFor(fieldPassword))

			view := m.View()
			for _, msg := range []string{tt.emailErr, tt.passwordErr} {
				if msg != "" {
					assert.Contains(t, view, "✗ "+msg)
				}
			}
			if tt.emailErr == "" && tt.passwordErr == "" {
				assert.Contains(t, view, "Signed in as "+tt.email)
			} else {
				assert.NotContains(t, view, "Signed in as")
			}
		})
	}
}

func TestUpdate_ErrorsWaitForVisit(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	m = tab(t, m, 4)
	m = typeText(t, m, "bad")
	assert.Empty(t, m.form.errorFor(fieldEmail), "no error while the field is being edited")

	m = tab(t, m, 1)
	assert.Equal(t, "Enter a valid email address", m.form.errorFor(fieldEmail))
	assert.Empty(t, m.form.errorFor(fieldPassword))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = typeText(t, m, "@example.com")
	assert.Empty(t, m.form.errorFor(fieldEmail), "errors clear as soon as the value is valid")
}

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()

	m, _ := newTestPage(t)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestRenderGallery(t *testing.T) {
	t.Parallel()

	slides := SlideViews(config.Default().Slides)
	var buf bytes.Buffer
	err := RenderGallery(&buf, GalleryOptions{
		Title:   "Gallery",
		Theme:   components.ThemeLight,
		Slides:  slides,
		Options: testOptions(),
		Index:   -1,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Gallery")
	assert.Contains(t, out, "Click Me →")
	assert.Contains(t, out, "slide 1 of 3")
	assert.Contains(t, out, "slide 3 of 3")
	assert.Contains(t, out, "Slide 2")
	assert.Contains(t, out, "press esc to close", "the modal is previewed inline")
	assert.Contains(t, out, "(•) Pro")
	assert.Contains(t, out, "[x] I accept the terms and conditions")
	assert.Contains(t, out, "✗ Password is required")
	assert.NotContains(t, out, "Email is required")
}

func TestRenderGallerySingleIndex(t *testing.T) {
	t.Parallel()

	slides := SlideViews(config.Default().Slides)
	var buf bytes.Buffer
	require.NoError(t, RenderGallery(&buf, GalleryOptions{Slides: slides, Options: testOptions(), Index: 1}))
	assert.Contains(t, buf.String(), "slide 2 of 3")
	assert.NotContains(t, buf.String(), "slide 1 of 3")

	err := RenderGallery(&bytes.Buffer{}, GalleryOptions{Slides: slides, Options: testOptions(), Index: 3})
	assert.ErrorContains(t, err, "out of range")
}

func TestRenderGalleryWithoutSlides(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderGallery(&buf, GalleryOptions{Options: testOptions(), Index: -1}))
	assert.Contains(t, buf.String(), "No slides")
}
