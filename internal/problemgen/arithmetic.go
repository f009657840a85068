package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

// Operand range for arithmetic expressions; after dead-zone avoidance the
// domain is {-5, -4, 0, 4, 5}.
const (
	arithOperandMin = -5
	arithOperandMax = 5
)

// Exponents are drawn separately so "**" stays small.
const (
	arithExponentMin = 2
	arithExponentMax = 3
)

// arithOutput is how the expression reaches print().
type arithOutput string

const (
	arithPrint     arithOutput = "print"     // print(expr)
	arithAssign    arithOutput = "assign"    // ans = expr; print(ans)
	arithVariables arithOutput = "variables" // x = 4; y = 5; ans = x + y; print(ans)
	arithFString   arithOutput = "fstring"   // as variables, print(f"ans = {ans}")
)

var arithOutputs = []arithOutput{arithPrint, arithAssign, arithVariables, arithFString}

// arithVarNames are used right-aligned: two operands get x, y; five get
// v, w, x, y, z.
var arithVarNames = []string{"v", "w", "x", "y", "z"}

// arithParams is the parameter set for one arithmetic question.
type arithParams struct {
	Operands []int
	Ops      []pyeval.Op
	Output   arithOutput
}

// arithOpCount returns the operator count for d.
func arithOpCount(d Difficulty) int {
	switch d {
	case Medium:
		return 3
	case Hard:
		return 4
	}
	return 2
}

type arithmeticSynth struct{}

func (arithmeticSynth) Subtopic() Subtopic { return SubtopicArithmetic }

func (arithmeticSynth) Admission() []Validator {
	return []Validator{
		&ExpressionCheckValidator{},
		&DecimalValidator{MaxPlaces: 1},
		&MagnitudeValidator{Min: 3, Max: 99, AllowZero: true},
	}
}

func (arithmeticSynth) Synthesize(s *Sampler, d Difficulty, shrink int) (*Candidate, error) {
	opCount := max(1, arithOpCount(d)-shrink)
	p := sampleArithmetic(s, opCount)
	p.Output = Pick(s, arithOutputs)
	return p.candidate()
}

// sampleArithmetic draws operands first, then one operator per gap subject
// to the hazard rules:
//   - at most one "**", whose exponent is redrawn from [2, 3]
//   - at most one of "/", "//", "%", never with a zero right operand
//   - "//" and "%" only between operands that are both >= 1
func sampleArithmetic(s *Sampler, opCount int) arithParams {
	operands := s.Operands(opCount+1, arithOperandMin, arithOperandMax)
	ops := make([]pyeval.Op, opCount)
	powUsed, divUsed := false, false

	for i := range ops {
		allowed := []pyeval.Op{pyeval.Add, pyeval.Sub, pyeval.Mul}
		if !powUsed && operands[i] != 0 {
			allowed = append(allowed, pyeval.Pow)
		}
		if !divUsed && operands[i+1] != 0 {
			allowed = append(allowed, pyeval.Div)
			if operands[i] >= 1 && operands[i+1] >= 1 {
				allowed = append(allowed, pyeval.FloorDiv, pyeval.Mod)
			}
		}

		op := Pick(s, allowed)
		switch {
		case op == pyeval.Pow:
			powUsed = true
			operands[i+1] = s.IntN(arithExponentMin, arithExponentMax)
		case op.Divides():
			divUsed = true
		}
		ops[i] = op
	}
	return arithParams{Operands: operands, Ops: ops}
}

// Expr renders the expression with literal operands. A negative base of
// "**" is parenthesized; expressions with three or more operators are
// wrapped in an outer pair.
func (p arithParams) Expr() string {
	return p.render(func(i int) string { return strconv.Itoa(p.Operands[i]) }, true)
}

// varNames returns the variable bound to each operand.
func (p arithParams) varNames() []string {
	return arithVarNames[len(arithVarNames)-len(p.Operands):]
}

func (p arithParams) render(operand func(int) string, literal bool) string {
	var b strings.Builder
	for i := range p.Operands {
		if i > 0 {
			fmt.Fprintf(&b, " %s ", p.Ops[i-1])
		}
		tok := operand(i)
		if literal && p.Operands[i] < 0 && i < len(p.Ops) && p.Ops[i] == pyeval.Pow {
			tok = "(" + tok + ")"
		}
		b.WriteString(tok)
	}
	if len(p.Ops) >= 3 {
		return "(" + b.String() + ")"
	}
	return b.String()
}

// Evaluate computes the ground truth from the operand and operator lists.
func (p arithParams) Evaluate() (pyeval.Value, error) {
	return pyeval.EvaluateInts(p.Operands, p.Ops)
}

// Code renders the snippet for the chosen output style.
func (p arithParams) Code() *snippet.Code {
	var c snippet.Code
	switch p.Output {
	case arithPrint:
		c.Print(p.Expr())
	case arithAssign:
		c.Assign("ans", p.Expr())
		c.Print("ans")
	case arithVariables, arithFString:
		names := p.varNames()
		for i, name := range names {
			c.Assign(name, p.Operands[i])
		}
		c.Assign("ans", p.render(func(i int) string { return names[i] }, false))
		if p.Output == arithFString {
			c.Print(`f"ans = {ans}"`)
		} else {
			c.Print("ans")
		}
	}
	return &c
}

func (p arithParams) candidate() (*Candidate, error) {
	v, err := p.Evaluate()
	if err != nil {
		return nil, err
	}
	answer := v.String()
	if p.Output == arithFString {
		answer = "ans = " + answer
	}
	return &Candidate{
		Question: Question{
			Text:          snippet.PrintQuestion(p.Code()),
			Answer:        answer,
			CaseSensitive: true,
		},
		Variant: string(p.Output),
		Numeric: &v,
		Expr:    p.Expr(),
	}, nil
}
