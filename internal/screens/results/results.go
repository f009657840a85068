// Package results shows the score of a submitted quiz and the answer
// review.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
	"github.com/hawarnekar/pyquiz/internal/router"
	"github.com/hawarnekar/pyquiz/internal/screen"
	sess "github.com/hawarnekar/pyquiz/internal/session"
	"github.com/hawarnekar/pyquiz/internal/ui/components"
	"github.com/hawarnekar/pyquiz/internal/ui/layout"
	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// ResultsScreen displays the quiz summary.
type ResultsScreen struct {
	state   *sess.SessionState
	summary *sess.SessionSummary
	menu    components.Menu
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
	_ screen.BackHandler     = (*ResultsScreen)(nil)
)

// New creates a ResultsScreen for a submitted quiz.
func New(state *sess.SessionState) *ResultsScreen {
	r := &ResultsScreen{
		state:   state,
		summary: sess.BuildSummary(state),
	}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "Review answers", Action: r.review},
		{Label: "New quiz", Action: router.PopToRoot},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return r
}

func (r *ResultsScreen) review() tea.Cmd {
	if err := sess.StartReview(r.state); err != nil {
		return nil
	}
	return router.Push(NewReview(r.state))
}

func (r *ResultsScreen) Init() tea.Cmd { return nil }

func (r *ResultsScreen) Title() string { return "Results" }

func (r *ResultsScreen) HandlesBack() bool { return true }

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "New quiz"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return r, router.PopToRoot()
	}
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	sum := r.summary
	var b strings.Builder

	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
		b.WriteString("\n")
	}

	scoreStyle := theme.Correct
	if sum.Percent < 50 {
		scoreStyle = theme.Incorrect
	}
	center(scoreStyle.Render(fmt.Sprintf("%d%%", sum.Percent)))
	center(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("%d out of %d correct", sum.Correct, sum.Total)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s • %s • %s • %d min",
			sum.Learner,
			problemgen.SubtopicDisplayName(sum.Subtopic),
			strings.ToUpper(string(sum.Difficulty)[:1])+string(sum.Difficulty)[1:],
			sum.Minutes)))
	b.WriteString("\n")

	if len(sum.Subtopics) > 1 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("By subtopic"))
		center(divider)
		for _, p := range sum.Subtopics {
			label := fmt.Sprintf("%-18s %2d/%-2d", problemgen.SubtopicDisplayName(p.Subtopic), p.Correct, p.Answered)
			bar := components.NewProgressBar(label, p.Correct, p.Answered, false, min(width-8, 60))
			center(bar.View())
		}
		b.WriteString("\n")
	}

	center(r.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
