package carousel

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/slider"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// Init starts listening for engine changes.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.updates)
}

// Update handles engine notifications and user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChangedMsg:
		// Input may have moved the engine since msg was published.
		m.state = m.engine.State()
		return m, waitForChange(m.updates)

	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.engine.Retreat()
	case key.Matches(msg, m.keys.Next):
		m.engine.Advance()
	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return m
		}
		m.engine.JumpTo(n - 1)
	case key.Matches(msg, m.keys.AutoPlay):
		m.engine.SetAutoPlay(!m.engine.State().AutoPlay)
	default:
		return m
	}
	m.state = m.engine.State()
	return m
}

// handleMouse turns a left-button press, drag and release into a gesture.
// A release that does not swipe is treated as a click on the control under
// the press point.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if m.hit(msg.X, msg.Y).Target == components.HitNone {
			return m
		}
		m.pressing = true
		m.pressX, m.pressY = msg.X, msg.Y
		m.engine.GestureStart(float64(msg.X))

	case tea.MouseActionMotion:
		if !m.pressing {
			return m
		}
		m.engine.GestureMove(float64(msg.X))

	case tea.MouseActionRelease:
		if !m.pressing {
			return m
		}
		m.pressing = false
		swipe := m.engine.GestureEnd()
		m.log.WithFields(map[string]any{"swipe": swipe.String()}).Debug("gesture ended")
		if swipe == slider.SwipeNone && msg.X == m.pressX && msg.Y == m.pressY {
			m.click(m.hit(msg.X, msg.Y))
		}
	}
	m.state = m.engine.State()
	return m
}

func (m Model) hit(x, y int) components.Hit {
	return m.view().HitTest(m.context(), x-m.originX, y-m.originY)
}

func (m Model) click(h components.Hit) {
	switch h.Target {
	case components.HitPrev:
		m.engine.Retreat()
	case components.HitNext:
		m.engine.Advance()
	case components.HitDot:
		m.engine.JumpTo(h.Index)
	}
}
