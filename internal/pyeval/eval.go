package pyeval

import "fmt"

// Evaluate computes operands[0] ops[0] operands[1] ... with Python
// precedence and associativity. Negative operands are atoms: the caller is
// responsible for rendering them in parentheses where Python would bind a
// unary minus differently (the base of "**").
func Evaluate(operands []Value, ops []Op) (Value, error) {
	if len(operands) == 0 || len(operands) != len(ops)+1 {
		return Value{}, fmt.Errorf("%w: %d operands for %d operators", ErrInvalidExpression, len(operands), len(ops))
	}
	for _, op := range ops {
		if !op.Valid() {
			return Value{}, fmt.Errorf("%w: unknown operator %q", ErrInvalidExpression, op)
		}
	}
	c := &climber{operands: operands, ops: ops}
	return c.climb(operands[0], 1)
}

// EvaluateInts is Evaluate over int operands.
func EvaluateInts(operands []int, ops []Op) (Value, error) {
	vals := make([]Value, len(operands))
	for i, n := range operands {
		vals[i] = Int(n)
	}
	return Evaluate(vals, ops)
}

// climber runs precedence climbing over a flat operand/operator sequence.
// next is the index of the next unconsumed operator.
type climber struct {
	operands []Value
	ops      []Op
	next     int
}

func (c *climber) climb(lhs Value, minPrec int) (Value, error) {
	for c.next < len(c.ops) && c.ops[c.next].Precedence() >= minPrec {
		op := c.ops[c.next]
		c.next++
		rhs := c.operands[c.next]
		for c.next < len(c.ops) {
			look := c.ops[c.next]
			if look.Precedence() > op.Precedence() {
				var err error
				if rhs, err = c.climb(rhs, op.Precedence()+1); err != nil {
					return Value{}, err
				}
				continue
			}
			if look.RightAssoc() && look.Precedence() == op.Precedence() {
				var err error
				if rhs, err = c.climb(rhs, op.Precedence()); err != nil {
					return Value{}, err
				}
				continue
			}
			break
		}
		var err error
		if lhs, err = Apply(lhs, op, rhs); err != nil {
			return Value{}, err
		}
	}
	return lhs, nil
}

// CmpOp is a comparison operator.
type CmpOp string

const (
	Less         CmpOp = "<"
	LessEqual    CmpOp = "<="
	Greater      CmpOp = ">"
	GreaterEqual CmpOp = ">="
	Equal        CmpOp = "=="
	NotEqual     CmpOp = "!="
)

// AllCmpOps lists every comparison operator.
func AllCmpOps() []CmpOp {
	return []CmpOp{Less, LessEqual, Greater, GreaterEqual, Equal, NotEqual}
}

// Compare evaluates lhs op rhs. An unknown operator is a programming error
// and panics.
func Compare(lhs float64, op CmpOp, rhs float64) bool {
	switch op {
	case Less:
		return lhs < rhs
	case LessEqual:
		return lhs <= rhs
	case Greater:
		return lhs > rhs
	case GreaterEqual:
		return lhs >= rhs
	case Equal:
		return lhs == rhs
	case NotEqual:
		return lhs != rhs
	}
	panic(fmt.Sprintf("pyeval: unknown comparison operator %q", string(op)))
}

// CompareValues is Compare over Values.
func CompareValues(lhs Value, op CmpOp, rhs Value) bool {
	return Compare(lhs.Num, op, rhs.Num)
}
