package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// MultiChoice lets the learner pick one of several options, by arrows and
// Enter or directly by letter. It locks after the first pick.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int // -1 when unknown
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a selector. question may be empty when the
// caller renders the prompt itself.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// optionLabel is A, B, C and so on.
func optionLabel(i int) string { return string(rune('A' + i)) }

// Choose locks the selector on option i.
func (m *MultiChoice) Choose(i int) {
	if i < 0 || i >= len(m.Options) {
		return
	}
	m.Selected = i
	m.ChosenIndex = i
	m.Submitted = true
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = max(m.Selected-1, 0)
	case "down", "j":
		m.Selected = min(m.Selected+1, len(m.Options)-1)
	case "enter":
		m.Choose(m.Selected)
	default:
		if len(key) == 1 {
			m.Choose(int(key[0]|0x20) - 'a')
		}
	}
	return m, nil
}

// optionStyle colors an option by state: after submission the correct
// option is green and a wrong pick red.
func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	switch {
	case m.Submitted && i == m.CorrectIndex:
		return theme.Correct
	case m.Submitted && i == m.ChosenIndex:
		return theme.Incorrect
	case m.Submitted:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	case i == m.Selected:
		return theme.Selected
	default:
		return theme.Unselected
	}
}

// View renders the options, one per line.
func (m MultiChoice) View() string {
	var b strings.Builder
	if m.Question != "" {
		b.WriteString(theme.Prompt.Render(m.Question))
		b.WriteString("\n\n")
	}
	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		b.WriteString(m.optionStyle(i).Render(fmt.Sprintf("%s%s)  %s", cursor, optionLabel(i), opt)))
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect reports whether the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
