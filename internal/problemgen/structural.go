package problemgen

import (
	"fmt"
	"strings"
)

// MaxTextLength bounds the display text of a single question.
const MaxTextLength = 4000

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *Candidate) *ValidationError {
	if err := CheckStructure(&c.Question); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	return nil
}

// CheckStructure reports the first structural problem with q, or nil.
// Static bank records go through the same checks as generated ones.
func CheckStructure(q *Question) error {
	if q.Topic == "" {
		return fmt.Errorf("topic is empty")
	}
	if !q.Subtopic.Valid() {
		return fmt.Errorf("subtopic %q is not one of %v", q.Subtopic, AllSubtopics())
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("difficulty must be \"easy\", \"medium\", or \"hard\"")
	}
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question is empty")
	}
	if len(q.Text) > MaxTextLength {
		return fmt.Errorf("question exceeds %d characters", MaxTextLength)
	}
	if strings.ContainsAny(q.Answer, "<>&") {
		return fmt.Errorf("answer %q contains markup characters", q.Answer)
	}

	switch q.Type {
	case TypeFill:
		if q.Answer == "" {
			return fmt.Errorf("answer is empty")
		}
		if len(q.Options) > 0 || q.Correct != nil {
			return fmt.Errorf("fill question must not carry options")
		}
	case TypeMultiple:
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple choice needs at least 2 options, got %d", len(q.Options))
		}
		seen := make(map[string]bool, len(q.Options))
		for i, o := range q.Options {
			o = strings.TrimSpace(o)
			if o == "" {
				return fmt.Errorf("option %d is empty", i)
			}
			if seen[o] {
				return fmt.Errorf("duplicate option %q", o)
			}
			seen[o] = true
		}
		if q.Correct == nil || *q.Correct < 0 || *q.Correct >= len(q.Options) {
			return fmt.Errorf("correct must index into options")
		}
	default:
		return fmt.Errorf("type must be \"fill\" or \"multiple\"")
	}
	return nil
}
