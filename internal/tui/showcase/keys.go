package showcase

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/showcase/internal/tui/carousel"
)

// KeyMap defines the page-level bindings. Carousel bindings are embedded so
// the help footer lists them too.
type KeyMap struct {
	Theme      key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Press      key.Binding
	PrevOption key.Binding
	NextOption key.Binding
	Close      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding

	Carousel carousel.KeyMap
}

// DefaultKeyMap returns the standard page bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous option"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next option"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close modal"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Carousel: carousel.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Press, k.Carousel.Prev, k.Carousel.Next, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Carousel.FullHelp(),
		[]key.Binding{k.NextFocus, k.PrevFocus, k.Press, k.Close},
		[]key.Binding{k.PrevOption, k.NextOption, k.PrevPage, k.NextPage},
		[]key.Binding{k.ScrollUp, k.ScrollDown, k.Theme, k.Help, k.Quit},
	)
}
