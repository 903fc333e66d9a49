package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/tui/carousel"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

const wheelStep = 3

// Init starts the carousel listener.
func (m Model) Init() tea.Cmd {
	return m.carousel.Init()
}

// Update handles page keys and forwards everything else to the carousel.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.carousel = m.carousel.WithWidth(msg.Width)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case carousel.ChangedMsg:
		return m.forward(msg)
	}

	// Cursor blinks belong to the focused input.
	if fl, ok := m.focus.field(); ok {
		return m, m.form.update(fl, msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalOpen {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.modalOpen = false
			m.log.Debug("modal closed")
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(m.focus.next())
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus(m.focus.prev())
	}

	if fl, ok := m.focus.field(); ok {
		return m.handleInputKey(fl, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.mode = m.mode.Toggle()
		m.theme = components.ThemeFor(m.mode)
		m.carousel = m.carousel.WithTheme(m.theme)
		m.log.WithFields(map[string]any{"theme": string(m.mode)}).Debug("theme toggled")
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		m.pager.PrevPage()
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.pager.NextPage()
		return m, nil
	case key.Matches(msg, m.keys.Press):
		m.activate()
		return m, nil
	case m.focus == focusPlan && key.Matches(msg, m.keys.PrevOption):
		m.plan = max(m.plan-1, 0)
		return m, nil
	case m.focus == focusPlan && key.Matches(msg, m.keys.NextOption):
		m.plan = min(m.plan+1, len(plans)-1)
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.scroll(-m.viewport.Height)
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.scroll(m.viewport.Height)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}
	return m.forward(msg)
}

// handleInputKey sends typed keys to the focused field. Enter moves from
// email to password and submits from password.
func (m Model) handleInputKey(fl field, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Press):
		if fl == fieldEmail {
			return m, m.setFocus(focusPassword)
		}
		ok := m.form.submit()
		m.log.WithFields(map[string]any{"valid": ok}).Debug("sign-in submitted")
		return m, nil
	}
	return m, m.form.update(fl, msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modalOpen {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-wheelStep)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scroll(wheelStep)
			return m, nil
		}
	}

	m.carousel = m.carousel.WithOrigin(0, m.carouselTop()-m.viewport.YOffset)
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.carousel.Update(msg)
	if c, ok := next.(carousel.Model); ok {
		m.carousel = c
	}
	return m, cmd
}

func (m *Model) activate() {
	switch m.focus {
	case focusButton:
		m.clicks++
	case focusModal:
		m.modalOpen = true
		m.log.Debug("modal opened")
	case focusPlan:
		m.plan = (m.plan + 1) % len(plans)
	case focusTerms:
		m.terms = !m.terms
	}
}

// setFocus moves focus to target, marking a field that loses focus as
// visited, and scrolls the target's section into view.
func (m *Model) setFocus(target focusTarget) tea.Cmd {
	if fl, ok := m.focus.field(); ok {
		m.form.leave(fl)
	}
	m.focus = target

	var cmd tea.Cmd
	if fl, ok := target.field(); ok {
		cmd = m.form.focus(fl)
	} else {
		m.form.blur()
	}
	m.reveal(sectionIndex(target))
	return cmd
}

// resize fits the viewport between the top of the screen and the footer.
func (m *Model) resize() {
	if !m.ready() {
		return
	}
	footer := lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-footer-pageGap, 1)
	m.viewport.SetContent(m.body())
}

func (m *Model) scroll(delta int) {
	if !m.ready() {
		return
	}
	m.viewport.SetContent(m.body())
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

// reveal scrolls so section starts on screen when it is outside the view.
func (m *Model) reveal(section int) {
	if !m.ready() {
		return
	}
	top := m.sectionTop(section)
	m.viewport.SetContent(m.body())
	if top < m.viewport.YOffset || top >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(top)
	}
}
