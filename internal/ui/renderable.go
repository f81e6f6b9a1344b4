// Package ui defines the contract shared by every renderable terminal element.
package ui

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}
