package carousel

import (
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/slider"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// Model adapts a slider.Engine to Bubble Tea. The engine owns navigation
// state; the model keeps the latest snapshot for rendering and translates
// key and mouse input into engine calls.
type Model struct {
	engine *slider.Engine
	slides []ui.Renderable
	state  slider.State

	updates     <-chan slider.State
	unsubscribe func()

	keys  KeyMap
	theme components.Theme
	width int

	// originX and originY locate the carousel's top-left cell on screen.
	originX, originY int

	// press is the cell where the current left-button drag began.
	pressing       bool
	pressX, pressY int

	log *logger.Logger
}

// Option customises a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithLogger attaches a logger for input tracing.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log.WithFields(map[string]any{"component": "carousel"})
	}
}

// New subscribes to engine and returns a model drawing slides. Call Close to
// release the subscription.
func New(engine *slider.Engine, slides []ui.Renderable, opts ...Option) Model {
	updates, unsubscribe := engine.Subscribe()
	m := Model{
		engine:      engine,
		slides:      slides,
		state:       engine.State(),
		updates:     updates,
		unsubscribe: unsubscribe,
		keys:        DefaultKeyMap(),
		theme:       components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the snapshot the model last rendered from.
func (m Model) State() slider.State {
	return m.state
}

// Keys returns the active key bindings.
func (m Model) Keys() KeyMap {
	return m.keys
}

// WithTheme returns a copy of the model drawn with theme.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	return m
}

// WithWidth returns a copy of the model limited to width columns.
func (m Model) WithWidth(width int) Model {
	m.width = width
	return m
}

// WithOrigin returns a copy of the model placed at (x, y) on screen. Mouse
// clicks are resolved relative to this point.
func (m Model) WithOrigin(x, y int) Model {
	m.originX, m.originY = x, y
	return m
}

// Close releases the engine subscription. The engine itself is left running.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) context() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme).WithWidth(m.width)
}

func (m Model) view() *components.SliderView {
	return components.NewSliderView(m.slides, m.state)
}
