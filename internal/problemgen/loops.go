package problemgen

import (
	"fmt"
	"strconv"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

// maxLoopIterations bounds simulation; sampled loops run a few dozen
// iterations at most.
const maxLoopIterations = 1000

type loopForm string

const (
	formWhile loopForm = "while"
	formFor   loopForm = "for"
)

type loopBody string

const (
	bodySum      loopBody = "sum"      // acc += v
	bodyExclude  loopBody = "exclude"  // if v % k != 0: acc += v
	bodyModify   loopBody = "modify"   // if v % k == 0: acc -= p, else acc += v
	bodyBreak    loopBody = "break"    // if guard: break; acc += v
	bodyContinue loopBody = "continue" // if guard: continue; acc += v
)

type loopGuard string

const (
	guardMod loopGuard = "mod" // v % k == 0
	guardEq  loopGuard = "eq"  // v == target
)

// loopParams is the parameter set for one loop question. The same value
// drives rendering in either form and the simulation.
type loopParams struct {
	Family string
	Form   loopForm
	Var    string
	Acc    string

	Start int
	Bound int
	Cmp   pyeval.CmpOp
	Step  int

	// BoundVar, when set, names a variable holding Bound in the while
	// form ("while n < m:").
	BoundVar string

	Body    loopBody
	Guard   loopGuard
	Divisor int
	Penalty int
	Target  int
}

// Classic loops sum i over [min(a, b), max(a, b)].
const (
	classicMin = -9
	classicMax = 9
)

// Counting loops run n from a small start toward m in either direction.
const (
	countingMin     = 1
	countingMax     = 10
	countingMaxDiff = 5
)

var excludeDivisors = []int{2, 3, 5}

type loopsSynth struct{}

func (loopsSynth) Subtopic() Subtopic { return SubtopicLoops }

func (loopsSynth) Admission() []Validator { return nil }

func (loopsSynth) Synthesize(s *Sampler, d Difficulty, _ int) (*Candidate, error) {
	var p loopParams
	if s.Bool() {
		p = sampleClassicLoop(s, d)
	} else {
		var err error
		if p, err = sampleCountingLoop(s, d); err != nil {
			return nil, err
		}
	}
	p.Form = Pick(s, []loopForm{formWhile, formFor})
	return p.candidate()
}

func sampleClassicLoop(s *Sampler, d Difficulty) loopParams {
	a, b := s.IntN(classicMin, classicMax), s.IntN(classicMin, classicMax)
	p := loopParams{
		Family: "classic",
		Var:    "i",
		Acc:    "sum",
		Start:  min(a, b),
		Bound:  max(a, b),
		Cmp:    pyeval.LessEqual,
		Step:   1,
		Body:   bodySum,
		Guard:  guardMod,
	}
	switch d {
	case Medium:
		p.Divisor = s.IntN(2, 5)
		if s.Bool() {
			p.Body = bodyExclude
		} else {
			p.Body = bodyModify
			p.Penalty = s.IntN(2, 5)
			for p.Penalty == p.Divisor {
				p.Penalty = s.IntN(2, 5)
			}
		}
	case Hard:
		p.Divisor = s.IntN(2, 5)
		p.Body = Pick(s, []loopBody{bodyBreak, bodyContinue})
	}
	return p
}

func sampleCountingLoop(s *Sampler, d Difficulty) (loopParams, error) {
	p := loopParams{
		Family:   "counting",
		Var:      "n",
		Acc:      "total",
		BoundVar: "m",
		Body:     bodySum,
		Guard:    guardEq,
	}
	if s.Bool() {
		p.Start = s.IntN(countingMin, countingMax)
		p.Bound = s.IntN(p.Start+1, p.Start+countingMaxDiff)
		p.Cmp = Pick(s, []pyeval.CmpOp{pyeval.Less, pyeval.LessEqual})
		p.Step = 1
	} else {
		p.Bound = s.IntN(countingMin, countingMax)
		p.Start = s.IntN(p.Bound+1, p.Bound+countingMaxDiff)
		p.Cmp = Pick(s, []pyeval.CmpOp{pyeval.Greater, pyeval.GreaterEqual})
		p.Step = -1
	}

	switch d {
	case Medium:
		p.Body = bodyExclude
		p.Divisor = Pick(s, excludeDivisors)
	case Hard:
		p.Body = Pick(s, []loopBody{bodyBreak, bodyContinue})
		target, err := snapToVisited(p.visited(), s.IntN(min(p.Start, p.Bound), max(p.Start, p.Bound)))
		if err != nil {
			return loopParams{}, err
		}
		p.Target = target
	}
	return p, nil
}

// snapToVisited returns want if the loop visits it, else the nearest value
// it does visit. Ties go to the smaller value.
func snapToVisited(visited []int, want int) (int, error) {
	if len(visited) == 0 {
		return 0, fmt.Errorf("%w: loop body never runs", ErrConstraintExhausted)
	}
	best := visited[0]
	for _, v := range visited {
		if v == want {
			return v, nil
		}
		dv, db := absInt(v-want), absInt(best-want)
		if dv < db || (dv == db && v < best) {
			best = v
		}
	}
	return best, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// holds reports whether the loop condition is true for v.
func (p loopParams) holds(v int) bool {
	return pyeval.Compare(float64(v), p.Cmp, float64(p.Bound))
}

// visited lists the values the loop variable takes while the condition
// holds, ignoring break.
func (p loopParams) visited() []int {
	var out []int
	for v := p.Start; p.holds(v) && len(out) < maxLoopIterations; v += p.Step {
		out = append(out, v)
	}
	return out
}

func (p loopParams) guardHit(v int) bool {
	if p.Guard == guardEq {
		return v == p.Target
	}
	return calc(v, pyeval.Mod, p.Divisor) == 0
}

// Simulate runs the loop the way Python would: the condition is checked,
// the body runs, then the step. continue steps before re-checking; break
// leaves without accumulating or stepping.
func (p loopParams) Simulate() (int, error) {
	acc, v := 0, p.Start
	for iter := 0; p.holds(v); iter++ {
		if iter >= maxLoopIterations {
			return 0, fmt.Errorf("%w: loop does not terminate", ErrConstraintExhausted)
		}
		switch p.Body {
		case bodySum:
			acc += v
		case bodyExclude:
			if calc(v, pyeval.Mod, p.Divisor) != 0 {
				acc += v
			}
		case bodyModify:
			if calc(v, pyeval.Mod, p.Divisor) == 0 {
				acc -= p.Penalty
			} else {
				acc += v
			}
		case bodyBreak:
			if p.guardHit(v) {
				return acc, nil
			}
			acc += v
		case bodyContinue:
			if p.guardHit(v) {
				v += p.Step
				continue
			}
			acc += v
		}
		v += p.Step
	}
	return acc, nil
}

// rangeStop converts the loop condition into the exclusive stop argument
// of range().
func (p loopParams) rangeStop() int {
	switch p.Cmp {
	case pyeval.LessEqual:
		return p.Bound + 1
	case pyeval.GreaterEqual:
		return p.Bound - 1
	}
	return p.Bound
}

func (p loopParams) stepStmt() string {
	if p.Step < 0 {
		return fmt.Sprintf("%s -= %d", p.Var, -p.Step)
	}
	return fmt.Sprintf("%s += %d", p.Var, p.Step)
}

func (p loopParams) guardText() string {
	if p.Guard == guardEq {
		return fmt.Sprintf("%s == %d", p.Var, p.Target)
	}
	return fmt.Sprintf("%s %% %d == 0", p.Var, p.Divisor)
}

// Code renders the snippet in p.Form.
func (p loopParams) Code() *snippet.Code {
	var c snippet.Code
	var header string
	stepInBody := p.Form == formWhile

	if p.Form == formWhile {
		bound := strconv.Itoa(p.Bound)
		if p.BoundVar != "" {
			c.Assign(p.Var, p.Start)
			c.Assign(p.BoundVar, p.Bound)
			c.Assign(p.Acc, 0)
			bound = p.BoundVar
		} else {
			c.Assign(p.Acc, 0)
			c.Assign(p.Var, p.Start)
		}
		header = fmt.Sprintf("while %s %s %s:", p.Var, p.Cmp, bound)
	} else {
		c.Assign(p.Acc, 0)
		if p.Step == 1 {
			header = fmt.Sprintf("for %s in range(%d, %d):", p.Var, p.Start, p.rangeStop())
		} else {
			header = fmt.Sprintf("for %s in range(%d, %d, %d):", p.Var, p.Start, p.rangeStop(), p.Step)
		}
	}

	c.Block(header, func(c *snippet.Code) {
		add := fmt.Sprintf("%s += %s", p.Acc, p.Var)
		switch p.Body {
		case bodySum:
			c.Line(add)
		case bodyExclude:
			c.Block(fmt.Sprintf("if %s %% %d != 0:", p.Var, p.Divisor), func(c *snippet.Code) { c.Line(add) })
		case bodyModify:
			c.Block(fmt.Sprintf("if %s %% %d == 0:", p.Var, p.Divisor), func(c *snippet.Code) {
				c.Linef("%s -= %d", p.Acc, p.Penalty)
			})
			c.Block("else:", func(c *snippet.Code) { c.Line(add) })
		case bodyBreak, bodyContinue:
			c.Block("if "+p.guardText()+":", func(c *snippet.Code) {
				if p.Body == bodyContinue && stepInBody {
					c.Line(p.stepStmt())
				}
				c.Line(string(p.Body))
			})
			c.Line(add)
		}
		if stepInBody {
			c.Line(p.stepStmt())
		}
	})
	c.Print(p.Acc)
	return &c
}

func (p loopParams) candidate() (*Candidate, error) {
	total, err := p.Simulate()
	if err != nil {
		return nil, err
	}
	return &Candidate{
		Question: Question{
			Text:          snippet.PrintQuestion(p.Code()),
			Answer:        strconv.Itoa(total),
			CaseSensitive: true,
		},
		Variant: fmt.Sprintf("%s_%s_%s", p.Family, p.Body, p.Form),
	}, nil
}
