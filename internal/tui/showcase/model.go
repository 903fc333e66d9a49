package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/slider"
	"github.com/alexisbeaulieu97/showcase/internal/tui/carousel"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// Options configures the page.
type Options struct {
	Title  string
	Theme  components.ThemeMode
	Engine *slider.Engine
	Slides []ui.Renderable
	Logger *logger.Logger
}

// Model is the showcase page: a header with a theme toggle, one section per
// component and the carousel. Once the terminal size is known the page
// scrolls inside a viewport above the help footer.
type Model struct {
	title string
	mode  components.ThemeMode
	theme components.Theme

	carousel carousel.Model
	pager    paginator.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	focus     focusTarget
	clicks    int
	modalOpen bool
	plan      int
	terms     bool
	form      form

	width  int
	height int

	log *logger.Logger
}

// New creates the page. The engine stays owned by the caller.
func New(opts Options) Model {
	mode := opts.Theme
	if mode != components.ThemeLight {
		mode = components.ThemeDark
	}

	pager := paginator.New()
	pager.PerPage = 1
	pager.SetTotalPages(TotalPages)

	keys := DefaultKeyMap()
	log := opts.Logger.WithFields(map[string]any{"component": "showcase"})

	m := Model{
		title:    opts.Title,
		mode:     mode,
		theme:    components.ThemeFor(mode),
		carousel: carousel.New(opts.Engine, opts.Slides, carousel.WithKeyMap(keys.Carousel), carousel.WithLogger(opts.Logger)),
		pager:    pager,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     keys,
		focus:    focusButton,
		plan:     -1,
		form:     newForm(),
		log:      log,
	}
	m.carousel = m.carousel.WithTheme(m.theme)
	return m
}

// Mode returns the active theme mode.
func (m Model) Mode() components.ThemeMode {
	return m.mode
}

// Page returns the selected pagination page, starting at 1.
func (m Model) Page() int {
	return m.pager.Page + 1
}

// Clicks returns how often the demo button was pressed.
func (m Model) Clicks() int {
	return m.clicks
}

// ModalOpen reports whether the demo modal is shown.
func (m Model) ModalOpen() bool {
	return m.modalOpen
}

// Plan returns the selected plan, or "" before a choice is made.
func (m Model) Plan() string {
	if m.plan < 0 {
		return ""
	}
	return plans[m.plan]
}

// TermsAccepted reports whether the checkbox is checked.
func (m Model) TermsAccepted() bool {
	return m.terms
}

// Carousel returns the embedded carousel model.
func (m Model) Carousel() carousel.Model {
	return m.carousel
}

// Close releases the carousel subscription.
func (m Model) Close() {
	m.carousel.Close()
}

func (m Model) context() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme).WithWidth(m.width)
}
