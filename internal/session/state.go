package session

import (
	"time"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// SessionPhase represents the current phase of the quiz.
type SessionPhase int

const (
	PhaseActive  SessionPhase = iota // Serving questions
	PhaseResults                     // Quiz submitted, showing results
	PhaseReview                      // Walking through answers
)

// Answer is the learner's submission for one question.
type Answer struct {
	// Input is the trimmed text the learner submitted. For multiple
	// choice it is the text of the chosen option.
	Input string

	Submitted bool
	Correct   bool
	At        time.Time
}

// SessionState tracks the runtime state of one quiz. Nothing is persisted.
type SessionState struct {
	// SessionID is the UUID for this quiz.
	SessionID string

	Plan *Plan

	// Questions is the fixed question list; Answers is parallel to it.
	Questions []problemgen.Question
	Answers   []Answer

	// Current indexes the displayed question.
	Current int

	// TotalAnswered and TotalCorrect count submissions so far.
	TotalAnswered int
	TotalCorrect  int

	// PerSubtopic tracks per-subtopic stats for the results screen.
	PerSubtopic map[problemgen.Subtopic]*SubtopicProgress

	StartTime time.Time
	EndTime   time.Time

	Phase SessionPhase

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// NewSessionState starts a quiz over questions.
func NewSessionState(plan *Plan, sessionID string, questions []problemgen.Question) *SessionState {
	s := &SessionState{
		SessionID:   sessionID,
		Plan:        plan,
		Questions:   questions,
		Answers:     make([]Answer, len(questions)),
		PerSubtopic: make(map[problemgen.Subtopic]*SubtopicProgress),
		Phase:       PhaseActive,
		Now:         time.Now,
	}
	s.StartTime = s.Now()
	return s
}

// CurrentQuestion returns the displayed question, or nil when the quiz is
// empty.
func (s *SessionState) CurrentQuestion() *problemgen.Question {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// CurrentAnswer returns the submission for the displayed question.
func (s *SessionState) CurrentAnswer() *Answer {
	if s.Current < 0 || s.Current >= len(s.Answers) {
		return nil
	}
	return &s.Answers[s.Current]
}

// AllAnswered reports whether every question has a submission.
func (s *SessionState) AllAnswered() bool {
	return len(s.Questions) > 0 && s.TotalAnswered == len(s.Questions)
}
