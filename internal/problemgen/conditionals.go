package problemgen

import (
	"fmt"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

// icaoWords are the branch labels. Each question draws its labels without
// replacement so every branch prints something different.
var icaoWords = []string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot",
	"Golf", "Hotel", "India", "Juliet", "Kilo", "Lima",
	"Mike", "November", "Oscar", "Papa", "Quebec", "Romeo",
	"Sierra", "Tango", "Uniform", "Victor", "Whiskey", "X-ray",
	"Yankee", "Zulu",
}

const (
	condOperandMin = -9
	condOperandMax = 9
)

var (
	condArithOps = []pyeval.Op{pyeval.Add, pyeval.Sub, pyeval.Mul}
	condCmpOps   = pyeval.AllCmpOps()
)

// condVariant renders a snippet and simulates which branch runs. Both use
// the values drawn inside build, so the printed label always matches.
type condVariant struct {
	name  string
	words int
	build func(s *Sampler, w []string) (*snippet.Code, string)
}

var condVariants = map[Difficulty][]condVariant{
	Easy: {
		{"variable_assignment", 2, condVariableAssignment},
		{"inline_double", 2, condInlineDouble},
		{"mixed_constant", 2, condMixedConstant},
	},
	Medium: {
		{"sequential", 3, condSequential},
		{"complex_chain", 3, condComplexChain},
		{"mixed_operations", 3, condMixedOperations},
	},
	Hard: {
		{"nested_with_calculations", 4, condNestedWithCalculations},
		{"complex_nested", 4, condComplexNested},
		{"multi_level", 4, condMultiLevel},
	},
}

type conditionalsSynth struct{}

func (conditionalsSynth) Subtopic() Subtopic { return SubtopicConditionals }

func (conditionalsSynth) Admission() []Validator { return nil }

func (conditionalsSynth) Synthesize(s *Sampler, d Difficulty, _ int) (*Candidate, error) {
	v := Pick(s, condVariants[d])
	words, err := Distinct(s, icaoWords, v.words)
	if err != nil {
		return nil, err
	}
	code, answer := v.build(s, words)
	return &Candidate{
		Question: Question{
			Text:          snippet.PrintQuestion(code),
			Answer:        answer,
			CaseSensitive: true,
		},
		Variant: v.name,
	}, nil
}

// calc evaluates a op b for the +, -, * operators used in conditions.
func calc(a int, op pyeval.Op, b int) int {
	v, err := pyeval.EvaluateInts([]int{a, b}, []pyeval.Op{op})
	if err != nil {
		panic(fmt.Sprintf("problemgen: %d %s %d: %v", a, op, b, err))
	}
	return int(v.Num)
}

func compareInts(a int, op pyeval.CmpOp, b int) bool {
	return pyeval.Compare(float64(a), op, float64(b))
}

func printWord(w string) func(*snippet.Code) {
	return func(c *snippet.Code) { c.Print(snippet.Quote(w)) }
}

// choose returns a when cond holds, otherwise b.
func choose[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

func condVariableAssignment(s *Sampler, w []string) (*snippet.Code, string) {
	a, b := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op, cop := Pick(s, condArithOps), Pick(s, condCmpOps)
	t := s.Operand(condOperandMin, condOperandMax)

	var c snippet.Code
	c.Assign("a", a).Assign("b", b)
	c.Linef("res = a %s b", op)
	c.Block(fmt.Sprintf("if res %s %d:", cop, t), printWord(w[0]))
	c.Block("else:", printWord(w[1]))
	return &c, choose(compareInts(calc(a, op, b), cop, t), w[0], w[1])
}

func condInlineDouble(s *Sampler, w []string) (*snippet.Code, string) {
	x, y, z := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op1, op2, cop := Pick(s, condArithOps), Pick(s, condArithOps), Pick(s, condCmpOps)

	var c snippet.Code
	c.Assign("x", x).Assign("y", y).Assign("z", z)
	c.Block(fmt.Sprintf("if x %s y %s y %s z:", op1, cop, op2), printWord(w[0]))
	c.Block("else:", printWord(w[1]))
	return &c, choose(compareInts(calc(x, op1, y), cop, calc(y, op2, z)), w[0], w[1])
}

func condMixedConstant(s *Sampler, w []string) (*snippet.Code, string) {
	a, k := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op, cop := Pick(s, condArithOps), Pick(s, condCmpOps)
	t := s.Operand(condOperandMin, condOperandMax)

	var c snippet.Code
	c.Assign("a", a)
	c.Block(fmt.Sprintf("if a %s %d %s %d:", op, k, cop, t), printWord(w[0]))
	c.Block("else:", printWord(w[1]))
	return &c, choose(compareInts(calc(a, op, k), cop, t), w[0], w[1])
}

func condSequential(s *Sampler, w []string) (*snippet.Code, string) {
	x, y := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op1, op2 := Pick(s, condArithOps), Pick(s, condArithOps)
	t1, t2 := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)

	f := calc(x, op1, y)
	sv := calc(x, op2, f)
	answer := w[2]
	switch {
	case sv > t1:
		answer = w[0]
	case f < t2:
		answer = w[1]
	}

	var c snippet.Code
	c.Assign("x", x).Assign("y", y)
	c.Linef("f = x %s y", op1)
	c.Linef("s = x %s f", op2)
	c.Block(fmt.Sprintf("if s > %d:", t1), printWord(w[0]))
	c.Block(fmt.Sprintf("elif f < %d:", t2), printWord(w[1]))
	c.Block("else:", printWord(w[2]))
	return &c, answer
}

func condComplexChain(s *Sampler, w []string) (*snippet.Code, string) {
	a, b, cv := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op1, op2 := Pick(s, condArithOps), Pick(s, condArithOps)

	lhs, rhs := calc(a, op1, b), calc(b, op2, cv)
	answer := w[2]
	switch {
	case lhs > rhs:
		answer = w[0]
	case lhs == rhs:
		answer = w[1]
	}

	var c snippet.Code
	c.Assign("a", a).Assign("b", b).Assign("c", cv)
	c.Block(fmt.Sprintf("if a %s b > b %s c:", op1, op2), printWord(w[0]))
	c.Block(fmt.Sprintf("elif a %s b == b %s c:", op1, op2), printWord(w[1]))
	c.Block("else:", printWord(w[2]))
	return &c, answer
}

func condMixedOperations(s *Sampler, w []string) (*snippet.Code, string) {
	p, q, r := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op := Pick(s, condArithOps)

	answer := w[2]
	switch {
	case calc(p, op, q) > calc(r, pyeval.Mul, 2):
		answer = w[0]
	case p > q:
		answer = w[1]
	}

	var c snippet.Code
	c.Assign("p", p).Assign("q", q).Assign("r", r)
	c.Block(fmt.Sprintf("if p %s q > r * 2:", op), printWord(w[0]))
	c.Block("elif p > q:", printWord(w[1]))
	c.Block("else:", printWord(w[2]))
	return &c, answer
}

// nested renders an if/else whose branches are each an if/else.
func nested(c *snippet.Code, outer, innerThen, innerElse string, w []string) {
	c.Block("if "+outer+":", func(c *snippet.Code) {
		c.Block("if "+innerThen+":", printWord(w[0]))
		c.Block("else:", printWord(w[1]))
	})
	c.Block("else:", func(c *snippet.Code) {
		c.Block("if "+innerElse+":", printWord(w[2]))
		c.Block("else:", printWord(w[3]))
	})
}

// nestedAnswer picks the label the nested if/else prints.
func nestedAnswer(outer, innerThen, innerElse bool, w []string) string {
	if outer {
		return choose(innerThen, w[0], w[1])
	}
	return choose(innerElse, w[2], w[3])
}

func condNestedWithCalculations(s *Sampler, w []string) (*snippet.Code, string) {
	m, n, k := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op1, op2 := Pick(s, condArithOps), Pick(s, condArithOps)
	calc1, calc2 := calc(m, op1, n), calc(n, op2, k)

	var c snippet.Code
	c.Assign("m", m).Assign("n", n).Assign("k", k)
	nested(&c,
		fmt.Sprintf("m %s n > 0", op1),
		fmt.Sprintf("n %s k > m %s n", op2, op1),
		fmt.Sprintf("n %s k < 0", op2),
		w)
	return &c, nestedAnswer(calc1 > 0, calc2 > calc1, calc2 < 0, w)
}

func condComplexNested(s *Sampler, w []string) (*snippet.Code, string) {
	u, v, x := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op1, op2 := Pick(s, condArithOps), Pick(s, condArithOps)

	var c snippet.Code
	c.Assign("u", u).Assign("v", v).Assign("w", x)
	nested(&c,
		fmt.Sprintf("u %s v > w", op1),
		fmt.Sprintf("v %s w > u %s w", op2, op2),
		"u > v",
		w)
	return &c, nestedAnswer(calc(u, op1, v) > x, calc(v, op2, x) > calc(u, op2, x), u > v, w)
}

func condMultiLevel(s *Sampler, w []string) (*snippet.Code, string) {
	sv, t := s.Operand(condOperandMin, condOperandMax), s.Operand(condOperandMin, condOperandMax)
	op1, op2 := Pick(s, condArithOps), Pick(s, condArithOps)
	t1 := calc(sv, op1, t)
	t2 := calc(sv, op2, t1)
	f := t1 + t2

	var c snippet.Code
	c.Assign("s", sv).Assign("t", t)
	c.Linef("t1 = s %s t", op1)
	c.Linef("t2 = s %s t1", op2)
	c.Line("f = t1 + t2")
	nested(&c, "f > 0", "t2 > t1", "t1 > s", w)
	return &c, nestedAnswer(f > 0, t2 > t1, t1 > sv, w)
}
