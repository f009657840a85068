// Package pyeval evaluates small arithmetic expressions and comparisons with
// Python 3 numeric semantics: true division, floor division, modulo taking
// the sign of the divisor, right-associative exponentiation and the int/float
// distinction that decides how a result is printed.
package pyeval

import (
	"errors"
	"math"
	"strconv"
)

// ErrInvalidExpression is returned for division or modulo by zero, a
// non-finite intermediate result, or an operation Python would reject.
var ErrInvalidExpression = errors.New("invalid expression")

// maxExactInt is the largest magnitude an int result may reach before it can
// no longer be represented exactly.
const maxExactInt = 1 << 53

// Value is a Python number: an int or a float.
type Value struct {
	Num   float64
	Float bool
}

// Int returns an int value.
func Int(n int) Value { return Value{Num: float64(n)} }

// FloatOf returns a float value.
func FloatOf(f float64) Value { return Value{Num: f, Float: true} }

// IsZero reports whether the value equals zero, including negative zero.
func (v Value) IsZero() bool { return v.Num == 0 }

// NegativeZero reports whether the value is the float -0.0.
func (v Value) NegativeZero() bool { return v.Float && v.Num == 0 && math.Signbit(v.Num) }

// String renders the value the way Python's print does.
func (v Value) String() string {
	if !v.Float {
		return strconv.FormatInt(int64(v.Num), 10)
	}
	return FormatFloat(v.Num)
}

// FormatFloat renders f like Python's float repr: integral values keep a
// trailing ".0", others use the shortest round-trip digits.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DecimalPlaces counts the digits after the decimal point in the printed
// form of v. Ints have none; "4.0" has one.
func (v Value) DecimalPlaces() int {
	if !v.Float {
		return 0
	}
	s := v.String()
	for i := 0; i < len(s); i++ {
		if s[i] == 'e' {
			return len(s)
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return len(s) - i - 1
		}
	}
	return 0
}

// Bool renders a boolean the way Python prints it.
func Bool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func checked(v Value) (Value, error) {
	if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
		return Value{}, ErrInvalidExpression
	}
	if !v.Float {
		if math.Abs(v.Num) > maxExactInt {
			return Value{}, ErrInvalidExpression
		}
		// Python ints have no negative zero.
		if v.Num == 0 {
			v.Num = 0
		}
	}
	return v, nil
}
