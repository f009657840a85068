package problemgen

import (
	"context"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

func TestArithmetic_Rendering(t *testing.T) {
	p := arithParams{
		Operands: []int{4, 5, 4, 4},
		Ops:      []pyeval.Op{pyeval.Add, pyeval.Div, pyeval.Mul},
	}

	tests := []struct {
		output arithOutput
		code   string
		answer string
	}{
		{arithPrint, "print((4 + 5 / 4 * 4))", "9.0"},
		{arithAssign, "ans = (4 + 5 / 4 * 4)\nprint(ans)", "9.0"},
		{arithVariables, "w = 4\nx = 5\ny = 4\nz = 4\nans = (w + x / y * z)\nprint(ans)", "9.0"},
		{arithFString, "w = 4\nx = 5\ny = 4\nz = 4\nans = (w + x / y * z)\nprint(f\"ans = {ans}\")", "ans = 9.0"},
	}
	for _, tc := range tests {
		t.Run(string(tc.output), func(t *testing.T) {
			p.Output = tc.output
			c, err := p.candidate()
			if err != nil {
				t.Fatal(err)
			}
			if got := p.Code().String(); got != tc.code {
				t.Errorf("code:\n%s\nwant:\n%s", got, tc.code)
			}
			if c.Question.Answer != tc.answer {
				t.Errorf("answer = %q, want %q", c.Question.Answer, tc.answer)
			}
			if c.Expr != "(4 + 5 / 4 * 4)" {
				t.Errorf("expr = %q", c.Expr)
			}
		})
	}
}

func TestArithmetic_NegativeBaseParenthesized(t *testing.T) {
	p := arithParams{
		Operands: []int{-4, 2},
		Ops:      []pyeval.Op{pyeval.Pow},
	}
	if got := p.Expr(); got != "(-4) ** 2" {
		t.Errorf("Expr() = %q, want (-4) ** 2", got)
	}
	v, err := p.Evaluate()
	if err != nil || v.String() != "16" {
		t.Errorf("Evaluate() = %v, %v; want 16", v, err)
	}
}

func TestArithmetic_OperatorHazards(t *testing.T) {
	s := NewSeededSampler(7)
	for i := 0; i < 2000; i++ {
		p := sampleArithmetic(s, 1+i%4)
		pows, divs := 0, 0
		for j, op := range p.Ops {
			left, right := p.Operands[j], p.Operands[j+1]
			switch op {
			case pyeval.Pow:
				pows++
				if left == 0 {
					t.Fatalf("%s: zero base", p.Expr())
				}
				if right < arithExponentMin || right > arithExponentMax {
					t.Fatalf("%s: exponent %d out of range", p.Expr(), right)
				}
			case pyeval.Div, pyeval.FloorDiv, pyeval.Mod:
				divs++
				if right == 0 {
					t.Fatalf("%s: zero divisor", p.Expr())
				}
				if op != pyeval.Div && (left < 1 || right < 1) {
					t.Fatalf("%s: %s with operand below 1", p.Expr(), op)
				}
			}
		}
		if pows > 1 || divs > 1 {
			t.Fatalf("%s: %d powers, %d divisions", p.Expr(), pows, divs)
		}
	}
}

func TestArithmetic_OuterParens(t *testing.T) {
	s := NewSeededSampler(8)
	for opCount := 1; opCount <= 4; opCount++ {
		p := sampleArithmetic(s, opCount)
		// The last operand is never a parenthesized base, so a trailing
		// ")" only comes from the outer pair.
		wrapped := strings.HasPrefix(p.Expr(), "(") && strings.HasSuffix(p.Expr(), ")")
		if wrapped != (opCount >= 3) {
			t.Errorf("%d operators: %q wrapped=%v", opCount, p.Expr(), wrapped)
		}
	}
}

func TestArithmetic_AdmittedAnswers(t *testing.T) {
	e := NewEngine(NewRand(11))
	for _, d := range AllDifficulties() {
		qs, rep, err := e.Generate(context.Background(), SubtopicArithmetic, d, 1000)
		if err != nil {
			t.Fatal(err)
		}
		if len(qs) == 0 {
			t.Fatalf("%s: nothing produced (%s)", d, rep)
		}
		for _, q := range qs {
			ans := strings.TrimPrefix(q.Answer, "ans = ")
			n, err := strconv.ParseFloat(ans, 64)
			if err != nil {
				t.Fatalf("answer %q is not a number", q.Answer)
			}
			if abs := math.Abs(n); abs != 0 && (abs < 3 || abs > 99) {
				t.Errorf("answer %s outside the magnitude window", ans)
			}
			if i := strings.IndexByte(ans, '.'); i >= 0 && len(ans)-i-1 > 1 {
				t.Errorf("answer %s has more than one decimal place", ans)
			}
			if ans == "-0.0" {
				t.Error("negative zero admitted")
			}
			code, ok := snippet.ExtractCode(q.Text)
			if !ok {
				t.Fatalf("question has no code block:\n%s", q.Text)
			}
			if strings.Contains(code, "/") && !strings.Contains(code, "//") && !strings.Contains(ans, ".") {
				t.Errorf("true division must print a float:\n%s\n=> %s", code, ans)
			}
		}
	}
}

func TestArithmetic_ShrinkReducesOperators(t *testing.T) {
	s := NewSeededSampler(12)
	for shrink := 0; shrink <= 5; shrink++ {
		c, err := arithmeticSynth{}.Synthesize(s, Hard, shrink)
		if err != nil {
			continue
		}
		want := max(1, 4-shrink)
		ops := 0
		for _, tok := range strings.Fields(c.Expr) {
			if pyeval.Op(tok).Valid() {
				ops++
			}
		}
		if ops != want {
			t.Errorf("shrink %d: %q has %d operators, want %d", shrink, c.Expr, ops, want)
		}
	}
}
