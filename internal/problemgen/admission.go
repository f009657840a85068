package problemgen

import (
	"fmt"
	"math"
)

// MagnitudeValidator keeps numeric answers inside a window that makes the
// question worth asking: Min <= |answer| <= Max, or exactly zero when
// AllowZero is set. Negative zero is always rejected.
type MagnitudeValidator struct {
	Min       float64
	Max       float64
	AllowZero bool
}

func (v *MagnitudeValidator) Name() string { return "magnitude" }

func (v *MagnitudeValidator) Validate(c *Candidate) *ValidationError {
	if c.Numeric == nil {
		return nil
	}
	n := *c.Numeric
	if n.NegativeZero() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is negative zero",
			Retryable: true,
			Shrink:    true,
		}
	}
	abs := math.Abs(n.Num)
	if abs == 0 && v.AllowZero {
		return nil
	}
	if abs < v.Min || abs > v.Max {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("|%s| outside [%g, %g]", n, v.Min, v.Max),
			Retryable: true,
			Shrink:    true,
		}
	}
	return nil
}

// DecimalValidator rejects numeric answers that print with more than
// MaxPlaces digits after the decimal point.
type DecimalValidator struct {
	MaxPlaces int
}

func (v *DecimalValidator) Name() string { return "decimals" }

func (v *DecimalValidator) Validate(c *Candidate) *ValidationError {
	if c.Numeric == nil {
		return nil
	}
	if places := c.Numeric.DecimalPlaces(); places > v.MaxPlaces {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s has %d decimal places, max %d", c.Numeric, places, v.MaxPlaces),
			Retryable: true,
		}
	}
	return nil
}
