package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

var (
	ErrEmptyAnswer     = errors.New("answer is empty")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotMultiple     = errors.New("question is not multiple choice")
	ErrUnanswered      = errors.New("some questions are unanswered")
	ErrNotActive       = errors.New("quiz is not active")
)

// New starts a quiz for plan over questions with a fresh session ID.
func New(plan *Plan, questions []problemgen.Question) (*SessionState, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	return NewSessionState(plan, uuid.NewString(), questions), nil
}

// HandleAnswer grades free-text input for the current question. Each
// question accepts one submission; input is trimmed first.
func HandleAnswer(state *SessionState, input string) (bool, error) {
	q, a, err := submittable(state)
	if err != nil {
		return false, err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return false, ErrEmptyAnswer
	}
	if q.IsMultipleChoice() {
		if i, ok := optionIndex(q, input); ok {
			correct := problemgen.CheckOption(i, q)
			record(state, q, a, q.Options[i], correct)
			return correct, nil
		}
	}
	correct := problemgen.CheckAnswer(input, q)
	record(state, q, a, input, correct)
	return correct, nil
}

// HandleOption grades the choice of option index (0-based) for the
// current multiple-choice question.
func HandleOption(state *SessionState, index int) (bool, error) {
	q, a, err := submittable(state)
	if err != nil {
		return false, err
	}
	if !q.IsMultipleChoice() {
		return false, ErrNotMultiple
	}
	if index < 0 || index >= len(q.Options) {
		return false, fmt.Errorf("option %d out of range [0, %d)", index, len(q.Options))
	}
	correct := problemgen.CheckOption(index, q)
	record(state, q, a, q.Options[index], correct)
	return correct, nil
}

func submittable(state *SessionState) (*problemgen.Question, *Answer, error) {
	if state.Phase != PhaseActive {
		return nil, nil, ErrNotActive
	}
	q, a := state.CurrentQuestion(), state.CurrentAnswer()
	if q == nil {
		return nil, nil, ErrEmptyQuiz
	}
	if a.Submitted {
		return nil, nil, ErrAlreadyAnswered
	}
	return q, a, nil
}

// optionIndex maps a 1-based position typed by the learner to an option
// index.
func optionIndex(q *problemgen.Question, input string) (int, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(q.Options) {
		return 0, false
	}
	return n - 1, true
}

func record(state *SessionState, q *problemgen.Question, a *Answer, input string, correct bool) {
	*a = Answer{Input: input, Submitted: true, Correct: correct, At: state.Now()}
	state.TotalAnswered++
	if correct {
		state.TotalCorrect++
	}
	p := state.PerSubtopic[q.Subtopic]
	if p == nil {
		p = &SubtopicProgress{Subtopic: q.Subtopic}
		state.PerSubtopic[q.Subtopic] = p
	}
	p.Record(correct)
}

// CanAdvance reports whether Next would move. Moving forward needs the
// current question answered, except while reviewing.
func CanAdvance(state *SessionState) bool {
	if state.Current >= len(state.Questions)-1 {
		return false
	}
	return state.Phase == PhaseReview || state.Answers[state.Current].Submitted
}

// Next moves to the following question.
func Next(state *SessionState) bool {
	if !CanAdvance(state) {
		return false
	}
	state.Current++
	return true
}

// Prev moves to the preceding question. Earlier answers stay locked.
func Prev(state *SessionState) bool {
	if state.Current == 0 {
		return false
	}
	state.Current--
	return true
}

// Submit ends the quiz once every question is answered.
func Submit(state *SessionState) error {
	if state.Phase != PhaseActive {
		return ErrNotActive
	}
	if !state.AllAnswered() {
		return fmt.Errorf("%w: %d of %d answered", ErrUnanswered, state.TotalAnswered, len(state.Questions))
	}
	state.EndTime = state.Now()
	state.Phase = PhaseResults
	return nil
}

// StartReview switches a submitted quiz to review at the first question.
func StartReview(state *SessionState) error {
	if state.Phase == PhaseActive {
		return ErrNotActive
	}
	state.Phase = PhaseReview
	state.Current = 0
	return nil
}
