// Package setup is the first screen: learner name, subtopic and
// difficulty. It builds the question pool and starts the quiz.
package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/hawarnekar/pyquiz/internal/bank"
	"github.com/hawarnekar/pyquiz/internal/problemgen"
	"github.com/hawarnekar/pyquiz/internal/router"
	"github.com/hawarnekar/pyquiz/internal/screen"
	"github.com/hawarnekar/pyquiz/internal/screens/quiz"
	sess "github.com/hawarnekar/pyquiz/internal/session"
	"github.com/hawarnekar/pyquiz/internal/ui/components"
	"github.com/hawarnekar/pyquiz/internal/ui/layout"
	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// QuizBuilder produces the question pool for one quiz.
type QuizBuilder interface {
	BuildQuiz(ctx context.Context, sub problemgen.Subtopic, d problemgen.Difficulty, count int) (*bank.Bank, error)
}

// Options configure the setup screen.
type Options struct {
	Builder QuizBuilder

	// Count returns the quiz length for a subtopic. Defaults to
	// session.DefaultCount.
	Count func(problemgen.Subtopic) int

	Logger *zap.Logger
}

type step int

const (
	stepName step = iota
	stepSubtopic
	stepDifficulty
	stepBuilding
)

// bankReadyMsg carries the built pool back to the screen.
type bankReadyMsg struct {
	Plan *sess.Plan
	Bank *bank.Bank
	Err  error
}

// SetupScreen collects the quiz choices.
type SetupScreen struct {
	opts       Options
	step       step
	name       components.TextInput
	subtopics  components.Menu
	difficulty components.Menu
	subtopic   problemgen.Subtopic
	errMsg     string
}

var (
	_ screen.Screen          = (*SetupScreen)(nil)
	_ screen.KeyHintProvider = (*SetupScreen)(nil)
	_ screen.BackHandler     = (*SetupScreen)(nil)
)

// New creates a SetupScreen.
func New(opts Options) *SetupScreen {
	if opts.Count == nil {
		opts.Count = sess.DefaultCount
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &SetupScreen{opts: opts}
	s.reset("")
	return s
}

// reset starts over, keeping the learner name.
func (s *SetupScreen) reset(name string) {
	s.step = stepName
	s.errMsg = ""
	s.name = components.NewTextInput("Your name", sess.MaxNameLength)
	s.name.SetValue(name)

	var subs []components.MenuItem
	for _, sub := range append(problemgen.AllSubtopics(), problemgen.SubtopicAll) {
		subs = append(subs, components.MenuItem{
			Label:  problemgen.SubtopicDisplayName(sub),
			Hint:   fmt.Sprintf("%d questions", s.opts.Count(sub)),
			Action: s.chooseSubtopic(sub),
		})
	}
	s.subtopics = components.NewMenu(subs)

	var diffs []components.MenuItem
	for _, d := range problemgen.AllDifficulties() {
		diffs = append(diffs, components.MenuItem{
			Label:  difficultyLabel(d),
			Hint:   difficultyHint[d],
			Action: s.chooseDifficulty(d),
		})
	}
	s.difficulty = components.NewMenu(diffs)
}

func (s *SetupScreen) Init() tea.Cmd {
	s.reset(s.name.Value())
	return s.name.Init()
}

func (s *SetupScreen) Title() string { return "New Quiz" }

func (s *SetupScreen) HandlesBack() bool { return true }

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case stepBuilding:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankReadyMsg:
		return s.handleBankReady(msg)
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	if s.step == stepName {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		if s.step == stepSubtopic || s.step == stepDifficulty {
			s.step--
			s.errMsg = ""
		}
		return s, nil
	}

	var cmd tea.Cmd
	switch s.step {
	case stepName:
		if key == "enter" {
			if err := sess.ValidateName(s.name.Value()); err != nil {
				s.errMsg = nameError(err)
				return s, nil
			}
			s.errMsg = ""
			s.step = stepSubtopic
			return s, nil
		}
		s.name, cmd = s.name.Update(msg)
	case stepSubtopic:
		s.subtopics, cmd = s.subtopics.Update(msg)
	case stepDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) chooseSubtopic(sub problemgen.Subtopic) func() tea.Cmd {
	return func() tea.Cmd {
		s.subtopic = sub
		s.step = stepDifficulty
		return nil
	}
}

func (s *SetupScreen) chooseDifficulty(d problemgen.Difficulty) func() tea.Cmd {
	return func() tea.Cmd {
		plan, err := sess.NewPlan(s.name.Value(), s.subtopic, d, s.opts.Count(s.subtopic))
		if err != nil {
			s.errMsg = err.Error()
			return nil
		}
		if s.opts.Builder == nil {
			s.errMsg = "question generation is not configured"
			return nil
		}
		s.step = stepBuilding
		s.errMsg = ""
		builder := s.opts.Builder
		return func() tea.Msg {
			bk, err := builder.BuildQuiz(context.Background(), plan.Subtopic, plan.Difficulty, plan.Count)
			return bankReadyMsg{Plan: plan, Bank: bk, Err: err}
		}
	}
}

func (s *SetupScreen) handleBankReady(msg bankReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.opts.Logger.Warn("quiz build failed", zap.Error(msg.Err))
		s.errMsg = "Could not build a quiz: " + msg.Err.Error()
		s.step = stepDifficulty
		return s, nil
	}
	state, err := sess.New(msg.Plan, msg.Bank.Questions)
	if err != nil {
		s.errMsg = "Could not start the quiz: " + err.Error()
		s.step = stepDifficulty
		return s, nil
	}
	s.opts.Logger.Info("quiz started",
		zap.String("session_id", state.SessionID),
		zap.String("bank_id", msg.Bank.ID),
		zap.String("subtopic", string(msg.Plan.Subtopic)),
		zap.String("difficulty", string(msg.Plan.Difficulty)),
		zap.Int("questions", len(state.Questions)))
	return s, router.Push(quiz.New(state, s.opts.Logger))
}

func (s *SetupScreen) View(width, height int) string {
	cw := min(width-4, 60)
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("Python Code Reading Quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Read the snippet. Predict what it prints."))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	done := lipgloss.NewStyle().Foreground(theme.TextDim)

	b.WriteString(label.Render("Name"))
	b.WriteString("\n")
	if s.step == stepName {
		b.WriteString(s.name.View())
	} else {
		b.WriteString(done.Render("  " + strings.TrimSpace(s.name.Value())))
	}
	b.WriteString("\n\n")

	if s.step >= stepSubtopic {
		b.WriteString(label.Render("Subtopic"))
		b.WriteString("\n")
		if s.step == stepSubtopic {
			b.WriteString(s.subtopics.View())
		} else {
			b.WriteString(done.Render("  " + problemgen.SubtopicDisplayName(s.subtopic)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.step >= stepDifficulty {
		b.WriteString(label.Render("Difficulty"))
		b.WriteString("\n")
		b.WriteString(s.difficulty.View())
		b.WriteString("\n")
	}

	if s.step == stepBuilding {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Generating %d questions...", s.opts.Count(s.subtopic))))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

var difficultyHint = map[problemgen.Difficulty]string{
	problemgen.Easy:   "one step at a time",
	problemgen.Medium: "a few moving parts",
	problemgen.Hard:   "nested logic and edge cases",
}

func difficultyLabel(d problemgen.Difficulty) string {
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

func nameError(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return "Name: " + msg
}
