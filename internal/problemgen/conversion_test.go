package problemgen

import (
	"regexp"
	"strconv"
	"testing"
)

func TestConversion_Text(t *testing.T) {
	tests := []struct {
		p      conversionParams
		text   string
		answer string
	}{
		{conversionParams{variantToBinary, 22}, "What is binary of decimal number 22?", "10110"},
		{conversionParams{variantToHex, 175}, "What is hexadecimal of decimal number 175?", "af"},
		{conversionParams{variantFromBinary, 22}, "What is decimal number of binary number 10110?", "22"},
		{conversionParams{variantFromHex, 255}, "What is decimal number of hexadecimal number ff?", "255"},
	}
	for _, tc := range tests {
		c := tc.p.candidate()
		if c.Question.Text != tc.text {
			t.Errorf("text = %q, want %q", c.Question.Text, tc.text)
		}
		if c.Question.Answer != tc.answer {
			t.Errorf("%s: answer = %q, want %q", tc.p.Variant, c.Question.Answer, tc.answer)
		}
		if c.Question.CaseSensitive == (tc.p.Variant == variantToHex) {
			t.Errorf("%s: CaseSensitive = %v", tc.p.Variant, c.Question.CaseSensitive)
		}
	}
}

var conversionOperand = regexp.MustCompile(`number ([0-9a-f]+)\?$`)

func TestConversion_RoundTrip(t *testing.T) {
	s := NewSeededSampler(51)
	for _, d := range AllDifficulties() {
		for range 300 {
			c, err := conversionSynth{}.Synthesize(s, d, 0)
			if err != nil {
				t.Fatal(err)
			}
			m := conversionOperand.FindStringSubmatch(c.Question.Text)
			if m == nil {
				t.Fatalf("cannot read operand from %q", c.Question.Text)
			}

			var value int64
			switch c.Variant {
			case variantToBinary, variantToHex:
				value, _ = strconv.ParseInt(m[1], 10, 64)
				base := 2
				if c.Variant == variantToHex {
					base = 16
				}
				back, err := strconv.ParseInt(c.Question.Answer, base, 64)
				if err != nil || back != value {
					t.Fatalf("%q answered %q", c.Question.Text, c.Question.Answer)
				}
			case variantFromBinary, variantFromHex:
				base := 2
				if c.Variant == variantFromHex {
					base = 16
				}
				value, _ = strconv.ParseInt(m[1], base, 64)
				if c.Question.Answer != strconv.FormatInt(value, 10) {
					t.Fatalf("%q answered %q", c.Question.Text, c.Question.Answer)
				}
			}
			if value < 1 || value > int64(conversionMax[d]) {
				t.Fatalf("%s: value %d out of range", d, value)
			}
		}
	}
}

func TestConversion_HexCaseInsensitive(t *testing.T) {
	q := conversionParams{variantToHex, 171}.candidate().Question
	for _, in := range []string{"ab", "AB", "Ab"} {
		if !CheckAnswer(in, &q) {
			t.Errorf("%q should be accepted for %q", in, q.Answer)
		}
	}
	if CheckAnswer("0xab", &q) {
		t.Error("prefixed answer should be rejected")
	}
}
