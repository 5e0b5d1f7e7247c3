// Package screen defines the contract every game screen satisfies. The
// app model owns the header and footer; screens render only the space
// between them.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"wordventure/internal/ui/layout"
)

// Screen is one full-window view managed by the router stack.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly new) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area. Width and height exclude the
	// header and footer.
	View(width, height int) string

	// Title is shown in the header. Empty hides it.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
// Screens without it get the default navigation hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
