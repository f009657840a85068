package problemgen

import (
	"fmt"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
)

// ExpressionCheckValidator re-parses the rendered expression text and
// evaluates it independently of the operand/operator list the answer was
// computed from. Candidates without an expression pass through silently.
type ExpressionCheckValidator struct{}

func (v *ExpressionCheckValidator) Name() string { return "expression-check" }

func (v *ExpressionCheckValidator) Validate(c *Candidate) *ValidationError {
	if c.Expr == "" {
		return nil
	}
	got, err := pyeval.EvalString(c.Expr)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
			Shrink:    true,
		}
	}
	want := c.Question.Answer
	if c.Numeric != nil {
		want = c.Numeric.String()
	}
	if got.String() != want {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s evaluates to %s but simulation gave %q", c.Expr, got, want),
			Retryable: true,
		}
	}
	return nil
}
