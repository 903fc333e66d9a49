// Package ui holds the contracts shared by every terminal component.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}

// String adapts a plain string to Renderable.
type String string

// View returns the string unchanged.
func (s String) View() string { return string(s) }
