package session

import (
	"math"
	"time"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

// SessionSummary holds the data displayed on the results screen.
type SessionSummary struct {
	Learner    string
	Subtopic   problemgen.Subtopic
	Difficulty problemgen.Difficulty

	Total   int
	Correct int
	// Percent is Correct/Total rounded to a whole number.
	Percent int
	// Minutes is the quiz duration rounded to whole minutes.
	Minutes  int
	Duration time.Duration

	Subtopics []SubtopicProgress
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	end := state.EndTime
	if end.IsZero() {
		end = state.Now()
	}
	d := end.Sub(state.StartTime)

	sum := &SessionSummary{
		Total:    len(state.Questions),
		Correct:  state.TotalCorrect,
		Minutes:  int(math.Round(d.Minutes())),
		Duration: d,
	}
	if state.Plan != nil {
		sum.Learner = state.Plan.Learner
		sum.Subtopic = state.Plan.Subtopic
		sum.Difficulty = state.Plan.Difficulty
	}
	if sum.Total > 0 {
		sum.Percent = int(math.Round(float64(sum.Correct) / float64(sum.Total) * 100))
	}
	for _, sub := range problemgen.AllSubtopics() {
		if p, ok := state.PerSubtopic[sub]; ok {
			sum.Subtopics = append(sum.Subtopics, *p)
		}
	}
	return sum
}

// ReviewItem is one row of the answer review.
type ReviewItem struct {
	Number   int
	Prompt   string
	Code     string
	Given    string
	Expected string
	Correct  bool
}

// BuildReview lists every question with the learner's answer next to the
// expected one.
func BuildReview(state *SessionState) []ReviewItem {
	items := make([]ReviewItem, len(state.Questions))
	for i := range state.Questions {
		q := &state.Questions[i]
		a := state.Answers[i]
		code, _ := snippet.ExtractCode(q.Text)
		expected := q.Answer
		if opt, ok := q.CorrectOption(); ok {
			expected = opt
		}
		items[i] = ReviewItem{
			Number:   i + 1,
			Prompt:   snippet.Prompt(q.Text),
			Code:     code,
			Given:    a.Input,
			Expected: expected,
			Correct:  a.Correct,
		}
	}
	return items
}
