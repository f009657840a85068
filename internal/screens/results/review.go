package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/screen"
	sess "github.com/hawarnekar/pyquiz/internal/session"
	"github.com/hawarnekar/pyquiz/internal/ui/layout"
	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// ReviewScreen walks through every question with the learner's answer.
// Esc returns to the results.
type ReviewScreen struct {
	state *sess.SessionState
	items []sess.ReviewItem
}

var (
	_ screen.Screen          = (*ReviewScreen)(nil)
	_ screen.KeyHintProvider = (*ReviewScreen)(nil)
	_ screen.StatusProvider  = (*ReviewScreen)(nil)
)

// NewReview creates a ReviewScreen. The session must be in review.
func NewReview(state *sess.SessionState) *ReviewScreen {
	return &ReviewScreen{state: state, items: sess.BuildReview(state)}
}

func (r *ReviewScreen) Init() tea.Cmd { return nil }

func (r *ReviewScreen) Title() string { return "Review" }

func (r *ReviewScreen) Status() string {
	wrong := 0
	for _, it := range r.items {
		if !it.Correct {
			wrong++
		}
	}
	return fmt.Sprintf("%d to revisit", wrong)
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Prev/Next"},
		{Key: "N", Description: "Next mistake"},
		{Key: "Esc", Description: "Results"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "right", "l", "down", "j", "enter":
		sess.Next(r.state)
	case "left", "h", "up", "k":
		sess.Prev(r.state)
	case "n":
		r.nextMistake()
	}
	return r, nil
}

// nextMistake jumps to the next wrong answer after the current one, if
// there is one.
func (r *ReviewScreen) nextMistake() {
	for i := r.state.Current + 1; i < len(r.items); i++ {
		if !r.items[i].Correct {
			r.state.Current = i
			return
		}
	}
}

func (r *ReviewScreen) View(width, height int) string {
	if len(r.items) == 0 {
		return ""
	}
	it := r.items[r.state.Current]
	var b strings.Builder

	mark := theme.Correct.Render("✓ correct")
	if !it.Correct {
		mark = theme.Incorrect.Render("✗ incorrect")
	}
	b.WriteString(fmt.Sprintf("  Question %d of %d   %s\n\n", it.Number, len(r.items), mark))

	body := lipgloss.NewStyle().PaddingLeft(4)
	b.WriteString(body.Render(theme.Prompt.Render(it.Prompt)))
	b.WriteString("\n\n")
	if it.Code != "" {
		b.WriteString(body.Render(layout.RenderCode(it.Code, width-8)))
		b.WriteString("\n\n")
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	given := theme.Incorrect.Render(it.Given)
	if it.Correct {
		given = theme.Correct.Render(it.Given)
	}
	b.WriteString(body.Render(dim.Render("Your answer:    ") + given))
	b.WriteString("\n")
	b.WriteString(body.Render(dim.Render("Correct answer: ") + theme.Answer.Render(it.Expected)))
	b.WriteString("\n")

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}
