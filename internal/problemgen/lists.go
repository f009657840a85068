package problemgen

import (
	"fmt"
	"strconv"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

// listOp names what the loop over the list computes.
type listOp string

const (
	listSumAll    listOp = "sum_all"
	listCount     listOp = "count"
	listSumEven   listOp = "sum_even"
	listSumOdd    listOp = "sum_odd"
	listLastIndex listOp = "last_index"
	listCountOf   listOp = "count_occurrences"
	listSmallest  listOp = "smallest"
	listLargest   listOp = "largest"
	listExclude   listOp = "sum_excluding"
	listModify    listOp = "sum_with_modification"
	listSliceSum  listOp = "slice_sum"
)

// Name pools. The pools are disjoint, so no two roles ever share a name.
var (
	listNames       = []string{"my_list", "data", "numbers", "elements", "items", "x", "y", "a", "arr", "my_arr"}
	listItemNames   = []string{"i", "j", "idx", "n", "num", "val", "el"}
	listAccNames    = []string{"res", "ans", "m", "t", "s", "c"}
	listTargetNames = []string{"v2", "s1", "key"}
)

const (
	listPerLine = 6

	pooledValueMin  = -9
	pooledValueMax  = 10
	pooledTargetMin = -11
	pooledTargetMax = 12
)

var listLengths = map[Difficulty][2]int{
	Easy:   {4, 8},
	Medium: {15, 25},
}

// listParams is the parameter set for one list question.
type listParams struct {
	Op     listOp
	Values []int

	Name      string
	Item      string
	Acc       string
	Index     string
	TargetVar string
	Target    int

	Divisor int
	Penalty int

	SliceStart int
	SliceEnd   int

	// Wrap breaks the literal across lines, listPerLine values each.
	Wrap bool
}

type listsSynth struct{}

func (listsSynth) Subtopic() Subtopic { return SubtopicLists }

func (listsSynth) Admission() []Validator { return nil }

func (listsSynth) Synthesize(s *Sampler, d Difficulty, _ int) (*Candidate, error) {
	var p listParams
	var err error
	switch d {
	case Easy:
		if s.Bool() {
			p = sampleClassicList(s, listSumAll)
		} else {
			p, err = samplePooledList(s, d, Pick(s, []listOp{listSumAll, listCount, listSumEven, listSumOdd}))
		}
	case Medium:
		if s.Bool() {
			p = sampleClassicList(s, Pick(s, []listOp{listExclude, listModify}))
		} else {
			p, err = samplePooledList(s, d, Pick(s, []listOp{listLastIndex, listCountOf, listSmallest, listLargest}))
		}
	default:
		p = sampleSliceList(s)
	}
	if err != nil {
		return nil, err
	}
	return p.candidate(), nil
}

// sampleClassicList draws 5..10 dead-zone-avoiding values summed into
// "sum" by "for num in n".
func sampleClassicList(s *Sampler, op listOp) listParams {
	p := listParams{
		Op:     op,
		Values: s.Operands(s.IntN(5, 10), classicMin, classicMax),
		Name:   "n",
		Item:   "num",
		Acc:    "sum",
	}
	if op == listExclude || op == listModify {
		p.Divisor = s.IntN(2, 5)
	}
	if op == listModify {
		p.Penalty = s.IntN(2, 5)
		for p.Penalty == p.Divisor {
			p.Penalty = s.IntN(2, 5)
		}
	}
	return p
}

func samplePooledList(s *Sampler, d Difficulty, op listOp) (listParams, error) {
	items, err := Distinct(s, listItemNames, 2)
	if err != nil {
		return listParams{}, err
	}
	bounds := listLengths[d]
	p := listParams{
		Op:        op,
		Values:    s.Ints(s.IntN(bounds[0], bounds[1]), pooledValueMin, pooledValueMax),
		Name:      Pick(s, listNames),
		Item:      items[0],
		Index:     items[1],
		Acc:       Pick(s, listAccNames),
		TargetVar: Pick(s, listTargetNames),
		Wrap:      d == Medium,
	}
	if s.Bool() {
		p.Target = Pick(s, p.Values)
	} else {
		p.Target = s.IntN(pooledTargetMin, pooledTargetMax)
	}
	return p, nil
}

// sampleSliceList draws 6..11 values and a slice [start:end] with
// start in 1..3 and end = max(start+2, len-1).
func sampleSliceList(s *Sampler) listParams {
	vals := s.Operands(s.IntN(6, 11), classicMin, classicMax)
	start := s.IntN(1, 3)
	return listParams{
		Op:         listSliceSum,
		Values:     vals,
		Name:       "n",
		Item:       "num",
		Acc:        "sum",
		SliceStart: start,
		SliceEnd:   max(start+2, len(vals)-1),
	}
}

func isEven(v int) bool { return calc(v, pyeval.Mod, 2) == 0 }

// Simulate computes what the snippet prints.
func (p listParams) Simulate() int {
	acc := 0
	switch p.Op {
	case listSumAll:
		for _, v := range p.Values {
			acc += v
		}
	case listCount:
		for range p.Values {
			acc++
		}
	case listSumEven, listSumOdd:
		for _, v := range p.Values {
			if isEven(v) == (p.Op == listSumEven) {
				acc += v
			}
		}
	case listLastIndex:
		acc = -1
		for i, v := range p.Values {
			if v == p.Target {
				acc = i
			}
		}
	case listCountOf:
		for _, v := range p.Values {
			if v == p.Target {
				acc++
			}
		}
	case listSmallest:
		acc = p.Values[0]
		for _, v := range p.Values {
			if v < acc {
				acc = v
			}
		}
	case listLargest:
		acc = p.Values[0]
		for _, v := range p.Values {
			if v > acc {
				acc = v
			}
		}
	case listExclude:
		for _, v := range p.Values {
			if calc(v, pyeval.Mod, p.Divisor) != 0 {
				acc += v
			}
		}
	case listModify:
		for _, v := range p.Values {
			if calc(v, pyeval.Mod, p.Divisor) == 0 {
				acc -= p.Penalty
			} else {
				acc += v
			}
		}
	case listSliceSum:
		for _, v := range pySlice(p.Values, p.SliceStart, p.SliceEnd) {
			acc += v
		}
	}
	return acc
}

// pySlice mirrors Python's xs[start:end] for non-negative bounds: bounds
// past the end clamp, and an empty range yields nothing.
func pySlice(xs []int, start, end int) []int {
	start, end = min(start, len(xs)), min(end, len(xs))
	if start >= end {
		return nil
	}
	return xs[start:end]
}

func (p listParams) literal() string {
	if p.Wrap {
		return snippet.WrappedIntList(p.Name, p.Values, listPerLine)
	}
	return snippet.IntList(p.Values)
}

// Code renders the snippet.
func (p listParams) Code() *snippet.Code {
	var c snippet.Code
	c.Assign(p.Name, p.literal())
	iter := p.Name
	add := fmt.Sprintf("%s += %s", p.Acc, p.Item)
	forHeader := func() string { return fmt.Sprintf("for %s in %s:", p.Item, iter) }

	switch p.Op {
	case listSumAll, listCount, listSumEven, listSumOdd, listExclude, listModify:
		c.Assign(p.Acc, 0)
		c.Block(forHeader(), func(c *snippet.Code) {
			switch p.Op {
			case listSumAll:
				c.Line(add)
			case listCount:
				c.Line(p.Acc + " += 1")
			case listSumEven:
				c.Block(fmt.Sprintf("if %s %% 2 == 0:", p.Item), func(c *snippet.Code) { c.Line(add) })
			case listSumOdd:
				c.Block(fmt.Sprintf("if %s %% 2 != 0:", p.Item), func(c *snippet.Code) { c.Line(add) })
			case listExclude:
				c.Block(fmt.Sprintf("if %s %% %d != 0:", p.Item, p.Divisor), func(c *snippet.Code) { c.Line(add) })
			case listModify:
				c.Block(fmt.Sprintf("if %s %% %d == 0:", p.Item, p.Divisor), func(c *snippet.Code) {
					c.Linef("%s -= %d", p.Acc, p.Penalty)
				})
				c.Block("else:", func(c *snippet.Code) { c.Line(add) })
			}
		})
	case listLastIndex:
		c.Assign(p.TargetVar, p.Target)
		c.Assign(p.Acc, -1)
		c.Assign(p.Index, 0)
		c.Block(forHeader(), func(c *snippet.Code) {
			c.Block(fmt.Sprintf("if %s == %s:", p.Item, p.TargetVar), func(c *snippet.Code) {
				c.Linef("%s = %s", p.Acc, p.Index)
			})
			c.Line(p.Index + " += 1")
		})
	case listCountOf:
		c.Assign(p.TargetVar, p.Target)
		c.Assign(p.Acc, 0)
		c.Block(forHeader(), func(c *snippet.Code) {
			c.Block(fmt.Sprintf("if %s == %s:", p.Item, p.TargetVar), func(c *snippet.Code) {
				c.Line(p.Acc + " += 1")
			})
		})
	case listSmallest, listLargest:
		rel := "<"
		if p.Op == listLargest {
			rel = ">"
		}
		c.Assign(p.Acc, p.Name+"[0]")
		c.Block(forHeader(), func(c *snippet.Code) {
			c.Block(fmt.Sprintf("if %s %s %s:", p.Item, rel, p.Acc), func(c *snippet.Code) {
				c.Linef("%s = %s", p.Acc, p.Item)
			})
		})
	case listSliceSum:
		c.Assign("s", fmt.Sprintf("%s[%d:%d]", p.Name, p.SliceStart, p.SliceEnd))
		iter = "s"
		c.Assign(p.Acc, 0)
		c.Block(forHeader(), func(c *snippet.Code) { c.Line(add) })
	}
	c.Print(p.Acc)
	return &c
}

func (p listParams) candidate() *Candidate {
	return &Candidate{
		Question: Question{
			Text:          snippet.PrintQuestion(p.Code()),
			Answer:        strconv.Itoa(p.Simulate()),
			CaseSensitive: true,
		},
		Variant: string(p.Op),
	}
}
