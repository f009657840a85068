package pyeval

import (
	"fmt"
	"math"
)

// Op is a binary arithmetic operator.
type Op string

const (
	Add      Op = "+"
	Sub      Op = "-"
	Mul      Op = "*"
	Div      Op = "/"
	FloorDiv Op = "//"
	Mod      Op = "%"
	Pow      Op = "**"
)

// AllOps lists every supported operator.
func AllOps() []Op {
	return []Op{Add, Sub, Mul, Div, FloorDiv, Mod, Pow}
}

// Precedence returns the binding strength of op; higher binds tighter.
func (op Op) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div, FloorDiv, Mod:
		return 2
	case Pow:
		return 3
	}
	return 0
}

// RightAssoc reports whether op groups right to left.
func (op Op) RightAssoc() bool { return op == Pow }

// Divides reports whether op divides by its right operand.
func (op Op) Divides() bool { return op == Div || op == FloorDiv || op == Mod }

// Valid reports whether op is a known operator.
func (op Op) Valid() bool { return op.Precedence() > 0 }

// Apply computes a op b.
func Apply(a Value, op Op, b Value) (Value, error) {
	float := a.Float || b.Float
	switch op {
	case Add:
		return checked(Value{Num: a.Num + b.Num, Float: float})
	case Sub:
		return checked(Value{Num: a.Num - b.Num, Float: float})
	case Mul:
		return checked(Value{Num: a.Num * b.Num, Float: float})
	case Div:
		if b.IsZero() {
			return Value{}, fmt.Errorf("%w: division by zero", ErrInvalidExpression)
		}
		return checked(FloatOf(a.Num / b.Num))
	case FloorDiv:
		if b.IsZero() {
			return Value{}, fmt.Errorf("%w: integer division by zero", ErrInvalidExpression)
		}
		if !float {
			return checked(Value{Num: float64(floorDivInt(int64(a.Num), int64(b.Num)))})
		}
		return checked(FloatOf(math.Floor(a.Num / b.Num)))
	case Mod:
		if b.IsZero() {
			return Value{}, fmt.Errorf("%w: modulo by zero", ErrInvalidExpression)
		}
		if !float {
			return checked(Int(modInt(int64(a.Num), int64(b.Num))))
		}
		return checked(FloatOf(modFloat(a.Num, b.Num)))
	case Pow:
		return pow(a, b)
	}
	return Value{}, fmt.Errorf("%w: unknown operator %q", ErrInvalidExpression, op)
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// modInt is a - b*floor(a/b): the result takes the sign of b.
func modInt(a, b int64) int {
	return int(a - b*floorDivInt(a, b))
}

func modFloat(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 {
		if (r < 0) != (b < 0) {
			r += b
		}
		return r
	}
	return math.Copysign(0, b)
}

func pow(a, b Value) (Value, error) {
	if a.IsZero() && b.Num < 0 {
		return Value{}, fmt.Errorf("%w: zero raised to a negative power", ErrInvalidExpression)
	}
	if a.Num < 0 && b.Num != math.Trunc(b.Num) {
		return Value{}, fmt.Errorf("%w: complex result", ErrInvalidExpression)
	}
	r := math.Pow(a.Num, b.Num)
	if !a.Float && !b.Float && b.Num >= 0 {
		return checked(Value{Num: r})
	}
	return checked(FloatOf(r))
}
