package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// Button is one choice in a dialog. It fires on Enter while focused, or
// on its shortcut key at any time.
type Button struct {
	Label    string
	Shortcut string // single lowercase key, optional
	Focused  bool
	OnPress  func() tea.Cmd
}

// NewButton creates a button with an optional shortcut key.
func NewButton(label, shortcut string, focused bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:    label,
		Shortcut: strings.ToLower(shortcut),
		Focused:  focused,
		OnPress:  onPress,
	}
}

// Pressed reports whether msg activates the button.
func (b Button) Pressed(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	key := strings.ToLower(kmsg.String())
	if b.Shortcut != "" && key == b.Shortcut {
		return true
	}
	return b.Focused && key == "enter"
}

// Update runs OnPress when msg activates the button.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.OnPress == nil || !b.Pressed(msg) {
		return b, nil
	}
	return b, b.OnPress()
}

// View renders the button, showing the shortcut in brackets.
func (b Button) View() string {
	label := b.Label
	if b.Shortcut != "" {
		label = "[" + strings.ToUpper(b.Shortcut) + "] " + label
	}
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render("  " + label)
}
