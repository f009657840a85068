package problemgen

import (
	"fmt"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
)

// Candidate is a question that has been synthesized but not yet admitted.
// Numeric is the simulated result when the answer is a number; Expr is the
// rendered expression when the snippet prints one directly.
type Candidate struct {
	Question Question
	Variant  string
	Numeric  *pyeval.Value
	Expr     string
}

// Validator checks a candidate before it is admitted to a batch.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in rejection reports and logs,
	// e.g. "structural", "magnitude", "decimals".
	Name() string

	// Validate returns nil if the candidate passes.
	Validate(c *Candidate) *ValidationError
}

// ValidationError describes why a candidate was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether resampling is likely to fix this
	Shrink    bool   // Whether the next draw should use a simpler structure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators applies validators in order and returns the first failure.
func runValidators(c *Candidate, validators []Validator) *ValidationError {
	for _, v := range validators {
		if verr := v.Validate(c); verr != nil {
			return verr
		}
	}
	return nil
}
