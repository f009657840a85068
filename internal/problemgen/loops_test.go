package problemgen

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
)

func guardLoop(body loopBody) loopParams {
	return loopParams{
		Family:   "counting",
		Var:      "n",
		Acc:      "total",
		BoundVar: "m",
		Start:    1,
		Bound:    5,
		Cmp:      pyeval.Less,
		Step:     1,
		Body:     body,
		Guard:    guardEq,
		Target:   3,
	}
}

func TestLoop_BreakAndContinue(t *testing.T) {
	tests := []struct {
		body loopBody
		want int
	}{
		{bodySum, 10},
		{bodyBreak, 3},
		{bodyContinue, 7},
	}
	for _, tc := range tests {
		got, err := guardLoop(tc.body).Simulate()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.body, got, tc.want)
		}
	}
}

func TestLoop_WhileRendering(t *testing.T) {
	p := guardLoop(bodyContinue)
	p.Form = formWhile
	want := strings.Join([]string{
		"n = 1",
		"m = 5",
		"total = 0",
		"while n < m:",
		"    if n == 3:",
		"        n += 1",
		"        continue",
		"    total += n",
		"    n += 1",
		"print(total)",
	}, "\n")
	if got := p.Code().String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	p.Body = bodyBreak
	if strings.Contains(p.Code().String(), "        n += 1") {
		t.Error("break should leave without stepping")
	}
}

func TestLoop_ForRendering(t *testing.T) {
	tests := []struct {
		p    loopParams
		want string
	}{
		{
			loopParams{Var: "i", Acc: "sum", Start: -2, Bound: 4, Cmp: pyeval.LessEqual, Step: 1, Body: bodySum, Form: formFor},
			"sum = 0\nfor i in range(-2, 5):\n    sum += i\nprint(sum)",
		},
		{
			loopParams{Var: "n", Acc: "total", Start: 8, Bound: 5, Cmp: pyeval.GreaterEqual, Step: -1, Body: bodyExclude, Divisor: 2, Form: formFor},
			"total = 0\nfor n in range(8, 4, -1):\n    if n % 2 != 0:\n        total += n\nprint(total)",
		},
	}
	for _, tc := range tests {
		if got := tc.p.Code().String(); got != tc.want {
			t.Errorf("got:\n%s\nwant:\n%s", got, tc.want)
		}
	}
}

// pyRange lists the values of Python's range(start, stop, step).
func pyRange(start, stop, step int) []int {
	var out []int
	for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
		out = append(out, v)
	}
	return out
}

var rangeCall = regexp.MustCompile(`range\((-?\d+), (-?\d+)(?:, (-?\d+))?\)`)

func TestLoop_FormsAgree(t *testing.T) {
	s := NewSeededSampler(21)
	for i := 0; i < 1500; i++ {
		d := AllDifficulties()[i%3]
		p := sampleClassicLoop(s, d)
		if i%2 == 0 {
			var err error
			if p, err = sampleCountingLoop(s, d); err != nil {
				t.Fatal(err)
			}
		}

		p.Form = formFor
		m := rangeCall.FindStringSubmatch(p.Code().String())
		if m == nil {
			t.Fatalf("no range call in:\n%s", p.Code())
		}
		start, _ := strconv.Atoi(m[1])
		stop, _ := strconv.Atoi(m[2])
		step := 1
		if m[3] != "" {
			step, _ = strconv.Atoi(m[3])
		}
		if got, want := pyRange(start, stop, step), p.visited(); !slices.Equal(got, want) {
			t.Fatalf("range(%d, %d, %d) = %v, while visits %v", start, stop, step, got, want)
		}

		if p.Guard == guardEq && (p.Body == bodyBreak || p.Body == bodyContinue) {
			if !slices.Contains(p.visited(), p.Target) {
				t.Fatalf("target %d is never visited by %v", p.Target, p.visited())
			}
		}
	}
}

func TestLoop_Penalty(t *testing.T) {
	s := NewSeededSampler(22)
	for range 300 {
		p := sampleClassicLoop(s, Medium)
		if p.Body == bodyModify && p.Penalty == p.Divisor {
			t.Fatalf("penalty equals divisor %d", p.Divisor)
		}
	}
}

func TestSnapToVisited(t *testing.T) {
	tests := []struct {
		visited []int
		want    int
		snapped int
	}{
		{[]int{1, 2, 3, 4}, 3, 3},
		{[]int{1, 2, 3, 4}, 7, 4},
		{[]int{8, 7, 6}, 2, 6},
		{[]int{2, 4}, 3, 2},
	}
	for _, tc := range tests {
		got, err := snapToVisited(tc.visited, tc.want)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.snapped {
			t.Errorf("snapToVisited(%v, %d) = %d, want %d", tc.visited, tc.want, got, tc.snapped)
		}
	}
	if _, err := snapToVisited(nil, 1); err == nil {
		t.Error("empty loop should be an error")
	}
}

func TestLoop_ModifyNegative(t *testing.T) {
	// -4 % 2 == 0 in Python, so -4 is penalized; -3 % 2 == 1 is summed.
	p := loopParams{Start: -4, Bound: -3, Cmp: pyeval.LessEqual, Step: 1, Body: bodyModify, Divisor: 2, Penalty: 3}
	got, err := p.Simulate()
	if err != nil {
		t.Fatal(err)
	}
	if got != -6 {
		t.Errorf("got %d, want -6", got)
	}
	if v := fmt.Sprint(p.visited()); v != "[-4 -3]" {
		t.Errorf("visited %s", v)
	}
}
