package session

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// Question counts for a quiz.
const (
	DefaultQuestionCount = 25
	AllQuestionCount     = 50
)

// MaxNameLength bounds the learner name in characters.
const MaxNameLength = 30

var (
	ErrInvalidName = errors.New("invalid name")
	ErrEmptyQuiz   = errors.New("quiz has no questions")
)

var namePattern = regexp.MustCompile(`^[\p{L}\p{N} ._-]+$`)

// ValidateName checks a learner name: 1 to MaxNameLength letters, digits,
// spaces, '-', '_' or '.'. Surrounding spaces are ignored.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	case len([]rune(name)) > MaxNameLength:
		return fmt.Errorf("%w: at most %d characters", ErrInvalidName, MaxNameLength)
	case !namePattern.MatchString(name):
		return fmt.Errorf("%w: use letters, digits, spaces, '-', '_' or '.'", ErrInvalidName)
	}
	return nil
}

// Plan is what the learner picked on the setup screen.
type Plan struct {
	Learner    string
	Topic      string
	Subtopic   problemgen.Subtopic
	Difficulty problemgen.Difficulty
	Count      int
}

// NewPlan validates the setup choices. A zero count picks the default for
// the subtopic.
func NewPlan(learner string, sub problemgen.Subtopic, d problemgen.Difficulty, count int) (*Plan, error) {
	if err := ValidateName(learner); err != nil {
		return nil, err
	}
	if sub != problemgen.SubtopicAll && !sub.Valid() {
		return nil, fmt.Errorf("%w: %q", problemgen.ErrUnknownSubtopic, sub)
	}
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %q", problemgen.ErrUnknownDifficulty, d)
	}
	if count < 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", count)
	}
	if count == 0 {
		count = DefaultCount(sub)
	}
	return &Plan{
		Learner:    strings.TrimSpace(learner),
		Topic:      problemgen.DefaultTopic,
		Subtopic:   sub,
		Difficulty: d,
		Count:      count,
	}, nil
}

// DefaultCount is the number of questions a quiz on sub asks.
func DefaultCount(sub problemgen.Subtopic) int {
	if sub == problemgen.SubtopicAll {
		return AllQuestionCount
	}
	return DefaultQuestionCount
}
