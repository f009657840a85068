package problemgen

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	basePrefixPattern = regexp.MustCompile(`^-?0[bBxXoO]`)
	binaryPattern     = regexp.MustCompile(`^[01]+$`)
	hexPattern        = regexp.MustCompile(`^[0-9a-f]+$`)
	decimalPattern    = regexp.MustCompile(`^[0-9]+$`)
)

// AnswerFormatValidator checks the shape of the answer string: a single
// line, no surrounding whitespace, no base prefix, and for conversion
// questions the digits of the target base.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(c *Candidate) *ValidationError {
	a := c.Question.Answer
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: true,
		}
	}

	if strings.TrimSpace(a) != a {
		return fail("answer %q has surrounding whitespace", a)
	}
	if strings.ContainsAny(a, "\r\n") {
		return fail("answer %q spans multiple lines", a)
	}
	if basePrefixPattern.MatchString(a) {
		return fail("answer %q carries a base prefix", a)
	}

	if c.Question.Subtopic == SubtopicConversion {
		var ok bool
		switch c.Variant {
		case variantToBinary:
			ok = binaryPattern.MatchString(a)
		case variantToHex:
			ok = hexPattern.MatchString(a)
		default:
			ok = decimalPattern.MatchString(a)
		}
		if !ok {
			return fail("answer %q is not valid for %s", a, c.Variant)
		}
	}
	return nil
}
