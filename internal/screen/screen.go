// Package screen declares what the router stacks: setup, quiz, results
// and review all satisfy Screen, and opt into the header status, footer
// hints and Esc handling through the smaller interfaces.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hawarnekar/pyquiz/internal/ui/layout"
)

// Screen is one page of the quiz. Init runs every time the screen
// becomes active through a push, a replace or a pop to root.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and the footer.
	View(width, height int) string

	// Title is shown centered in the header.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a status
// on the right of the header.
type StatusProvider interface {
	Status() string
}

// BackHandler is an optional interface for screens that handle Esc
// themselves instead of being popped.
type BackHandler interface {
	HandlesBack() bool
}
