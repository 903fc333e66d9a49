package carousel

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the carousel key bindings.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Jump     key.Binding
	AutoPlay key.Binding
}

// DefaultKeyMap returns the standard carousel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to slide"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle auto-play"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.AutoPlay}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Jump, k.AutoPlay}}
}
