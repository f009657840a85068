package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// TextInput is a single-line field for names and answers. Once locked it
// ignores input and shows whether the locked value was right.
type TextInput struct {
	Model   textinput.Model
	locked  bool
	correct bool
}

// NewTextInput creates a focused input. charLimit 0 means unlimited.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "» "
	ti.CharLimit = charLimit
	ti.Focus()
	return TextInput{Model: ti}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	if t.locked {
		return nil
	}
	return t.Model.Focus()
}

// Update forwards msg to the underlying model unless locked.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.locked {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a ✓ or ✗ once locked.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.locked {
		return view
	}
	if t.correct {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

// Value returns the current text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the text.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Lock freezes the input at its current value and records the verdict.
func (t *TextInput) Lock(correct bool) {
	t.locked = true
	t.correct = correct
	t.Model.Blur()
}

// Locked reports whether Lock was called.
func (t TextInput) Locked() bool {
	return t.locked
}
