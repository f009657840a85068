package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hawarnekar/pyquiz/internal/pyeval"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

// algoVariant renders one algorithm snippet and computes what it prints.
type algoVariant struct {
	name  string
	build func(s *Sampler) (*snippet.Code, string)
}

var algoVariants = map[Difficulty][]algoVariant{
	Easy: {
		{"count_even", algoCountEven},
		{"find_maximum", algoFindMaximum},
		{"sum_digits", algoSumDigits},
		{"words_starting_with", algoWordsStartingWith},
		{"words_containing", algoWordsContaining},
	},
	Medium: {
		{"prime_check", algoPrimeCheck},
		{"count_factors", algoCountFactors},
		{"reverse_number", algoReverseNumber},
		{"palindrome", algoPalindrome},
		{"fibonacci", algoFibonacci},
		{"most_frequent_letter_before_t", algoMostFrequentBeforeT},
	},
	Hard: {
		{"bubble_sort_step", algoBubbleSortStep},
		{"perfect_number", algoPerfectNumber},
		{"string_bubble_sort", algoStringBubbleSort},
		{"complex_string_processing", algoComplexStrings},
	},
}

// Word pools for the string algorithms.
var (
	startWords = []string{
		"atom", "acceleration", "algebra", "angle", "bacteria", "biodiversity", "carbon", "cell",
		"circle", "density", "diameter", "equation", "element", "energy", "friction", "force",
		"genetics", "gravity", "hydrogen", "integer", "kinetic", "mass", "molecule", "neutron",
		"oxygen", "photosynthesis", "polygon", "pressure", "quadratic", "radius", "speed",
		"temperature", "velocity", "volume",
	}
	startLetters = []string{"a", "b", "c", "m", "p"}

	containWords = []string{
		"mitosis", "respiration", "photosynthesis", "chromosome", "ecosystem", "formula",
		"theorem", "factorization", "polynomial", "triangle", "rectangle", "coordinate",
		"proportion", "statistics", "probability", "magnetic", "electric", "chemical",
		"physical", "organic", "compound", "solution", "reaction", "isotope",
	}
	containLetters = []string{"e", "o", "t", "a", "i"}

	beforeTWords = []string{
		"orbit", "habitat", "magnet", "vertex", "factor", "vector", "centre", "matter",
		"rotational", "potential", "systematic", "genetics", "mathematics", "statistics",
		"quadratic", "arithmetic",
	}

	sortWords = []string{
		"atom", "biology", "carbon", "density", "element", "friction", "genetics", "hydrogen",
		"isotope", "kinetic", "molecule", "neutron", "oxygen", "polygon", "quadratic", "radius",
		"statistics", "triangle", "velocity", "volume",
	}

	phrases = []string{
		" Cellular respiration ", "Photosynthesis process", " Light reaction ", "Gravitational force",
		"Nuclear fusion", " Atomic structure ", "Chemical bonding", " Periodic table ",
		"Electromagnetic waves", " Sound waves ", "Heat transfer", " Newton laws ",
		" Quadratic equation ", " Linear equation ", " Polynomial function ", " Trigonometric ratio ",
		" Circle theorem ", " Triangle inequality ", " Probability theory ", " Statistics data ",
		" Cell wall ", " DNA RNA ", " Photon ", "Gravity", " Enzyme ", " Protein ",
		"Ion bond", " pH scale ", " Neutron ", " Proton ", " Electron ", " Mitosis ",
		" Prime number ", " Integer set ", " Rational number ", " Real number ",
	}
)

// Fixed pools where a random draw would rarely hit the interesting case.
var (
	primeCheckPool  = []int{7, 11, 13, 17, 19, 23, 8, 9, 10, 12, 14, 15, 16, 18, 20, 21, 22, 24, 25}
	perfectPool     = []int{6, 28, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 30}
	palindromeLists = [][]int{
		{1, 2, 1}, {3, 4, 3}, {5, 6, 7, 6, 5}, {8, 9, 8}, {1, 2, 3, 2, 1},
		{1, 2, 3}, {4, 5, 6}, {7, 8, 9, 1}, {2, 3, 4, 5}, {6, 7, 8, 9, 1},
	}
)

type algorithmsSynth struct{}

func (algorithmsSynth) Subtopic() Subtopic { return SubtopicBasicAlgorithms }

func (algorithmsSynth) Admission() []Validator { return nil }

func (algorithmsSynth) Synthesize(s *Sampler, d Difficulty, _ int) (*Candidate, error) {
	v := Pick(s, algoVariants[d])
	code, answer := v.build(s)
	return &Candidate{
		Question: Question{
			Text:          snippet.PrintQuestion(code),
			Answer:        answer,
			CaseSensitive: true,
		},
		Variant: v.name,
	}, nil
}

// pyIndex draws a valid index into a sequence of length n, negative half
// the time, and returns it with the position it resolves to.
func pyIndex(s *Sampler, n int) (index, pos int) {
	if s.Bool() {
		index = -s.IntN(1, n)
		return index, n + index
	}
	index = s.IntN(0, n-1)
	return index, index
}

func algoCountEven(s *Sampler) (*snippet.Code, string) {
	nums := s.Ints(s.IntN(8, 15), 1, 9)
	count := 0
	for _, n := range nums {
		if n%2 == 0 {
			count++
		}
	}

	var c snippet.Code
	c.Assign("arr", snippet.IntList(nums))
	c.Assign("x", 0)
	c.Block("for val in arr:", func(c *snippet.Code) {
		c.Block("if val % 2 == 0:", func(c *snippet.Code) { c.Line("x += 1") })
	})
	c.Print("x")
	return &c, strconv.Itoa(count)
}

func algoFindMaximum(s *Sampler) (*snippet.Code, string) {
	nums := s.Ints(s.IntN(8, 15), 1, 20)
	pos := 0
	for i, n := range nums {
		if n > nums[pos] {
			pos = i
		}
	}

	var c snippet.Code
	c.Assign("arr", snippet.IntList(nums))
	c.Assign("val", "arr[0]")
	c.Assign("pos", 0)
	c.Assign("i", 1)
	c.Block("while i < len(arr):", func(c *snippet.Code) {
		c.Block("if arr[i] > val:", func(c *snippet.Code) {
			c.Line("val = arr[i]")
			c.Line("pos = i")
		})
		c.Line("i += 1")
	})
	c.Print("pos")
	return &c, strconv.Itoa(pos)
}

func algoSumDigits(s *Sampler) (*snippet.Code, string) {
	n := s.IntN(123, 999)
	total := 0
	for t := n; t > 0; t /= 10 {
		total += t % 10
	}

	var c snippet.Code
	c.Assign("n", n)
	c.Assign("x", 0)
	c.Block("while n > 0:", func(c *snippet.Code) {
		c.Line("x += n % 10")
		c.Line("n = n // 10")
	})
	c.Print("x")
	return &c, strconv.Itoa(total)
}

func algoWordsStartingWith(s *Sampler) (*snippet.Code, string) {
	words := PickN(s, startWords, s.IntN(8, 12))
	letter := Pick(s, startLetters)
	count := 0
	for _, w := range words {
		if strings.HasPrefix(strings.ToLower(w), letter) {
			count++
		}
	}

	var c snippet.Code
	c.Assign("w", snippet.StrList(words))
	c.Assign("t", snippet.Quote(letter))
	c.Assign("x", 0)
	c.Block("for wrd in w:", func(c *snippet.Code) {
		c.Block("if wrd.lower().startswith(t):", func(c *snippet.Code) { c.Line("x += 1") })
	})
	c.Print("x")
	return &c, strconv.Itoa(count)
}

func algoWordsContaining(s *Sampler) (*snippet.Code, string) {
	words := PickN(s, containWords, s.IntN(8, 12))
	letter := Pick(s, containLetters)
	count := 0
	for _, w := range words {
		if strings.Contains(strings.ToLower(w), letter) {
			count++
		}
	}

	var c snippet.Code
	c.Assign("w", snippet.StrList(words))
	c.Assign("ltr", snippet.Quote(letter))
	c.Assign("x", 0)
	c.Block("for wrd in w:", func(c *snippet.Code) {
		c.Block("if ltr in wrd.lower():", func(c *snippet.Code) { c.Line("x += 1") })
	})
	c.Print("x")
	return &c, strconv.Itoa(count)
}

func algoPrimeCheck(s *Sampler) (*snippet.Code, string) {
	n := Pick(s, primeCheckPool)
	prime := n >= 2
	for i := 2; i < n; i++ {
		if n%i == 0 {
			prime = false
		}
	}

	var c snippet.Code
	c.Assign("n", n)
	c.Assign("f", "True")
	c.Assign("i", 2)
	c.Block("while i < n:", func(c *snippet.Code) {
		c.Block("if n % i == 0:", func(c *snippet.Code) { c.Line("f = False") })
		c.Line("i += 1")
	})
	c.Print("f")
	return &c, pyeval.Bool(prime)
}

func algoCountFactors(s *Sampler) (*snippet.Code, string) {
	n := s.IntN(6, 20)
	count := 0
	for i := 1; i <= n; i++ {
		if n%i == 0 {
			count++
		}
	}

	var c snippet.Code
	c.Assign("n", n)
	c.Assign("c", 0)
	c.Assign("i", 1)
	c.Block("while i <= n:", func(c *snippet.Code) {
		c.Block("if n % i == 0:", func(c *snippet.Code) { c.Line("c += 1") })
		c.Line("i += 1")
	})
	c.Print("c")
	return &c, strconv.Itoa(count)
}

func algoReverseNumber(s *Sampler) (*snippet.Code, string) {
	n := s.IntN(123, 987)
	r := 0
	for t := n; t > 0; t /= 10 {
		r = r*10 + t%10
	}

	var c snippet.Code
	c.Assign("n", n)
	c.Assign("r", 0)
	c.Block("while n > 0:", func(c *snippet.Code) {
		c.Line("r = r * 10 + n % 10")
		c.Line("n = n // 10")
	})
	c.Print("r")
	return &c, strconv.Itoa(r)
}

func algoPalindrome(s *Sampler) (*snippet.Code, string) {
	nums := Pick(s, palindromeLists)
	same := true
	for i := 0; i < len(nums)/2; i++ {
		if nums[i] != nums[len(nums)-1-i] {
			same = false
		}
	}

	var c snippet.Code
	c.Assign("arr", snippet.IntList(nums))
	c.Assign("b", "True")
	c.Assign("i", 0)
	c.Block("while i < len(arr) // 2:", func(c *snippet.Code) {
		c.Block("if arr[i] != arr[len(arr) - 1 - i]:", func(c *snippet.Code) { c.Line("b = False") })
		c.Line("i += 1")
	})
	c.Print("b")
	return &c, pyeval.Bool(same)
}

func algoFibonacci(s *Sampler) (*snippet.Code, string) {
	n := s.IntN(4, 7)
	fib := []int{0, 1}
	for i := 2; i < n; i++ {
		fib = append(fib, fib[i-1]+fib[i-2])
	}
	index, pos := pyIndex(s, n)

	var c snippet.Code
	c.Assign("n", n)
	c.Assign("s", "[0, 1]")
	c.Assign("i", 2)
	c.Block("while i < n:", func(c *snippet.Code) {
		c.Line("s.append(s[i-1] + s[i-2])")
		c.Line("i += 1")
	})
	c.Print(fmt.Sprintf("s[%d]", index))
	return &c, strconv.Itoa(fib[pos])
}

// mostFrequentBeforeT counts, per letter, how often it directly precedes a
// "t". Ties go to the letter counted first; with no match the answer is "x".
func mostFrequentBeforeT(words []string) string {
	counts := map[byte]int{}
	var order []byte
	for _, w := range words {
		w = strings.ToLower(w)
		for i := 0; i+1 < len(w); i++ {
			if w[i+1] != 't' {
				continue
			}
			if _, ok := counts[w[i]]; !ok {
				order = append(order, w[i])
			}
			counts[w[i]]++
		}
	}
	best, most := "x", 0
	for _, ch := range order {
		if counts[ch] > most {
			best, most = string(ch), counts[ch]
		}
	}
	return best
}

func algoMostFrequentBeforeT(s *Sampler) (*snippet.Code, string) {
	words := PickN(s, beforeTWords, s.IntN(6, 10))

	var c snippet.Code
	c.Assign("w", snippet.StrList(words))
	c.Assign("cnt", "{}")
	c.Block("for wrd in w:", func(c *snippet.Code) {
		c.Block("for i in range(len(wrd) - 1):", func(c *snippet.Code) {
			c.Block("if wrd[i + 1].lower() == 't':", func(c *snippet.Code) {
				c.Line("ch = wrd[i].lower()")
				c.Block("if ch in cnt:", func(c *snippet.Code) { c.Line("cnt[ch] += 1") })
				c.Block("else:", func(c *snippet.Code) { c.Line("cnt[ch] = 1") })
			})
		})
	})
	c.Blank()
	c.Assign("mc", "'x'")
	c.Assign("mn", 0)
	c.Block("for ch, count in cnt.items():", func(c *snippet.Code) {
		c.Block("if count > mn:", func(c *snippet.Code) {
			c.Line("mn = count")
			c.Line("mc = ch")
		})
	})
	c.Print("mc")
	return &c, mostFrequentBeforeT(words)
}

// bubblePass runs one bubble-sort pass over a copy of xs.
func bubblePass[T any](xs []T, greater func(a, b T) bool) []T {
	out := append([]T(nil), xs...)
	for i := 0; i+1 < len(out); i++ {
		if greater(out[i], out[i+1]) {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}
	return out
}

// swapBlock renders the while loop of one bubble pass over list name;
// key wraps each element access, e.g. "%s.lower()".
func swapBlock(c *snippet.Code, name, key string) {
	at := func(i string) string { return fmt.Sprintf(key, name+"["+i+"]") }
	c.Assign("i", 0)
	c.Block(fmt.Sprintf("while i < len(%s) - 1:", name), func(c *snippet.Code) {
		c.Block(fmt.Sprintf("if %s > %s:", at("i"), at("i + 1")), func(c *snippet.Code) {
			c.Linef("tmp = %s[i]", name)
			c.Linef("%s[i] = %s[i + 1]", name, name)
			c.Linef("%s[i + 1] = tmp", name)
		})
		c.Line("i += 1")
	})
}

func algoBubbleSortStep(s *Sampler) (*snippet.Code, string) {
	nums := s.Ints(4, 1, 9)
	passed := bubblePass(nums, func(a, b int) bool { return a > b })
	index, pos := pyIndex(s, len(passed))

	var c snippet.Code
	c.Assign("a", snippet.IntList(nums))
	swapBlock(&c, "a", "%s")
	c.Print(fmt.Sprintf("a[%d]", index))
	return &c, strconv.Itoa(passed[pos])
}

func algoPerfectNumber(s *Sampler) (*snippet.Code, string) {
	n := Pick(s, perfectPool)
	sum := 0
	for i := 1; i < n; i++ {
		if n%i == 0 {
			sum += i
		}
	}

	var c snippet.Code
	c.Assign("n", n)
	c.Assign("s", 0)
	c.Assign("i", 1)
	c.Block("while i < n:", func(c *snippet.Code) {
		c.Block("if n % i == 0:", func(c *snippet.Code) { c.Line("s += i") })
		c.Line("i += 1")
	})
	c.Assign("res", "s == n")
	c.Print("res")
	return &c, pyeval.Bool(sum == n)
}

func algoStringBubbleSort(s *Sampler) (*snippet.Code, string) {
	words := PickN(s, sortWords, s.IntN(5, 8))
	passed := bubblePass(words, func(a, b string) bool { return strings.ToLower(a) > strings.ToLower(b) })
	index, pos := pyIndex(s, len(passed))

	var c snippet.Code
	c.Assign("w", snippet.StrList(words))
	swapBlock(&c, "w", "%s.lower()")
	c.Print(fmt.Sprintf("w[%d]", index))
	return &c, passed[pos]
}

// phraseScore mirrors the snippet: strip, underscores for spaces, lower,
// then count the parts of every phrase longer than threshold.
func phraseScore(ps []string, threshold int) int {
	total := 0
	for _, p := range ps {
		norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p), " ", "_"))
		if len(norm) > threshold {
			total += len(strings.Split(norm, "_"))
		}
	}
	return total
}

func algoComplexStrings(s *Sampler) (*snippet.Code, string) {
	ps := PickN(s, phrases, s.IntN(4, 6))
	threshold := s.IntN(8, 12)

	var c snippet.Code
	c.Assign("w", snippet.StrList(ps))
	c.Assign("res", 0)
	c.Block("for wrd in w:", func(c *snippet.Code) {
		c.Line(`p = wrd.strip().replace(" ", "_").lower()`)
		c.Block(fmt.Sprintf("if len(p) > %d:", threshold), func(c *snippet.Code) {
			c.Line(`res += len(p.split("_"))`)
		})
	})
	c.Print("res")
	return &c, strconv.Itoa(phraseScore(ps, threshold))
}
