// Package quiz is the question-by-question screen.
package quiz

import (
	"errors"
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/hawarnekar/pyquiz/internal/router"
	"github.com/hawarnekar/pyquiz/internal/screen"
	"github.com/hawarnekar/pyquiz/internal/screens/results"
	sess "github.com/hawarnekar/pyquiz/internal/session"
	"github.com/hawarnekar/pyquiz/internal/ui/components"
	"github.com/hawarnekar/pyquiz/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz.
type QuizScreen struct {
	state  *sess.SessionState
	log    *zap.Logger
	input  components.TextInput
	choice components.MultiChoice

	showingQuitConfirm bool
	quitFocus          int // 0 keep going, 1 end quiz
	errMsg             string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
	_ screen.BackHandler     = (*QuizScreen)(nil)
)

// New creates a QuizScreen over a started session.
func New(state *sess.SessionState, log *zap.Logger) *QuizScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuizScreen{state: state, log: log}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) Title() string { return "Quiz" }

func (s *QuizScreen) HandlesBack() bool { return true }

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("%s  ✓ %d/%d", s.state.Plan.Learner, s.state.TotalCorrect, s.state.TotalAnswered)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if s.answered() {
		hints[0].Description = "Next"
		if s.onLast() {
			hints[0].Description = "Finish"
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Tab/Shift+Tab", Description: "Next/Prev"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
}

// loadQuestion rebuilds the input widgets for the current question.
func (s *QuizScreen) loadQuestion() {
	s.errMsg = ""
	q := s.state.CurrentQuestion()
	a := s.state.CurrentAnswer()

	s.input = components.NewTextInput("Type the output...", 60)
	if a.Submitted {
		s.input.SetValue(a.Input)
		s.input.Lock(a.Correct)
	}

	if q.IsMultipleChoice() {
		correct := -1
		if q.Correct != nil {
			correct = *q.Correct
		}
		s.choice = components.NewMultiChoice("", q.Options, correct)
		if a.Submitted {
			s.choice.Choose(slices.Index(q.Options, a.Input))
			s.choice.Submitted = true
		}
	}
}

func (s *QuizScreen) answered() bool { return s.state.CurrentAnswer().Submitted }

func (s *QuizScreen) onLast() bool { return s.state.Current == len(s.state.Questions)-1 }

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		return s.handleKey(kmsg)
	}
	if !s.answered() && !s.state.CurrentQuestion().IsMultipleChoice() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "esc":
			s.showingQuitConfirm = false
		case "left", "right", "tab", "shift+tab", "h", "l":
			s.quitFocus = 1 - s.quitFocus
		default:
			for _, b := range s.quitButtons() {
				if b.Pressed(msg) {
					_, cmd := b.Update(msg)
					return s, cmd
				}
			}
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		s.quitFocus = 0
		return s, nil
	case "tab":
		if sess.Next(s.state) {
			s.loadQuestion()
			return s, s.input.Init()
		}
		if !s.answered() {
			s.errMsg = "Answer this question first."
		}
		return s, nil
	case "shift+tab":
		if sess.Prev(s.state) {
			s.loadQuestion()
			return s, s.input.Init()
		}
		return s, nil
	case "enter":
		if s.answered() {
			return s.advance()
		}
		return s.submit()
	}

	if s.answered() {
		return s, nil
	}

	var cmd tea.Cmd
	if s.state.CurrentQuestion().IsMultipleChoice() {
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.submit()
		}
		return s, cmd
	}
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// quitButtons are the choices of the quit dialog. Enter presses the
// focused one; Y and N work regardless of focus.
func (s *QuizScreen) quitButtons() []components.Button {
	return []components.Button{
		components.NewButton("Keep going", "n", s.quitFocus == 0, func() tea.Cmd {
			s.showingQuitConfirm = false
			return nil
		}),
		components.NewButton("End quiz", "y", s.quitFocus == 1, s.abandon),
	}
}

func (s *QuizScreen) abandon() tea.Cmd {
	s.showingQuitConfirm = false
	s.log.Info("quiz abandoned",
		zap.String("session_id", s.state.SessionID),
		zap.Int("answered", s.state.TotalAnswered))
	return router.PopToRoot()
}

// submit grades the current question.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	var (
		correct bool
		err     error
	)
	if s.state.CurrentQuestion().IsMultipleChoice() {
		correct, err = sess.HandleOption(s.state, s.choice.Selected)
	} else {
		correct, err = sess.HandleAnswer(s.state, s.input.Value())
	}
	switch {
	case errors.Is(err, sess.ErrEmptyAnswer):
		s.errMsg = "Type what the code prints, then press Enter."
		return s, nil
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}

	s.log.Debug("answer submitted",
		zap.String("session_id", s.state.SessionID),
		zap.Int("question", s.state.Current+1),
		zap.Bool("correct", correct))
	s.loadQuestion()
	return s, nil
}

// advance moves on after an answered question, or finishes the quiz from
// the last one.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.onLast() {
		sess.Next(s.state)
		s.loadQuestion()
		return s, s.input.Init()
	}
	if err := sess.Submit(s.state); err != nil {
		s.errMsg = fmt.Sprintf("%d question(s) still unanswered. Use Shift+Tab to go back.",
			len(s.state.Questions)-s.state.TotalAnswered)
		return s, nil
	}
	sum := sess.BuildSummary(s.state)
	s.log.Info("quiz submitted",
		zap.String("session_id", s.state.SessionID),
		zap.Int("correct", sum.Correct),
		zap.Int("total", sum.Total),
		zap.Int("percent", sum.Percent),
		zap.Duration("duration", sum.Duration))
	return s, router.Replace(results.New(s.state))
}
