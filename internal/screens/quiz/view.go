package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
	"github.com/hawarnekar/pyquiz/internal/snippet"
	"github.com/hawarnekar/pyquiz/internal/ui/components"
	"github.com/hawarnekar/pyquiz/internal/ui/layout"
	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return s.renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the active question display.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	state := s.state
	q := state.CurrentQuestion()
	a := state.CurrentAnswer()
	total := len(state.Questions)

	var b strings.Builder

	// Info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", problemgen.SubtopicDisplayName(q.Subtopic), q.Difficulty))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", state.Current+1, total))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", state.TotalAnswered, total, true, max(width-8, 10))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().PaddingLeft(4)
	b.WriteString(body.Render(theme.Prompt.Render(snippet.Prompt(q.Text))))
	b.WriteString("\n\n")
	if code, ok := snippet.ExtractCode(q.Text); ok {
		b.WriteString(body.Render(layout.RenderCode(code, width-8)))
		b.WriteString("\n\n")
	}
	if q.IsMultipleChoice() {
		b.WriteString(body.Render(s.choice.View()))
	} else {
		b.WriteString(body.Render("Output: " + s.input.View()))
	}
	b.WriteString("\n\n")

	if a.Submitted {
		b.WriteString(body.Render(renderFeedback(q, a.Correct)))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString(body.Render(theme.Hint.Render(s.errMsg)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

// renderFeedback shows whether the submitted answer was right and, if
// not, the expected output.
func renderFeedback(q *problemgen.Question, correct bool) string {
	if correct {
		return theme.Correct.Render("Correct!")
	}
	expected := q.Answer
	if opt, ok := q.CorrectOption(); ok {
		expected = opt
	}
	return theme.Incorrect.Render("Incorrect.") + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Expected: ") +
		theme.Answer.Render(expected)
}

func (s *QuizScreen) renderQuitConfirm(width, height int) string {
	var buttons []string
	for _, b := range s.quitButtons() {
		buttons = append(buttons, b.View())
	}
	msg := theme.Prompt.Render("End this quiz?") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d of %d answered. Nothing is saved.", s.state.TotalAnswered, len(s.state.Questions))) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Center, buttons[0], "  ", buttons[1])
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(msg))
}
