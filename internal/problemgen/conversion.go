package problemgen

import (
	"fmt"
	"strconv"
)

// Conversion variants. Every conversion goes to or from decimal.
const (
	variantToBinary   = "dec_to_bin"
	variantToHex      = "dec_to_hex"
	variantFromBinary = "bin_to_dec"
	variantFromHex    = "hex_to_dec"
)

var conversionVariants = []string{variantToBinary, variantToHex, variantFromBinary, variantFromHex}

// conversionMax bounds the decimal value per difficulty. Digit count is a
// consequence of the value, never sampled directly.
var conversionMax = map[Difficulty]int{
	Easy:   31,
	Medium: 127,
	Hard:   255,
}

type conversionParams struct {
	Variant string
	Value   int
}

type conversionSynth struct{}

func (conversionSynth) Subtopic() Subtopic { return SubtopicConversion }

func (conversionSynth) Admission() []Validator { return nil }

func (conversionSynth) Synthesize(s *Sampler, d Difficulty, _ int) (*Candidate, error) {
	hi, ok := conversionMax[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	p := conversionParams{
		Variant: Pick(s, conversionVariants),
		Value:   s.IntN(1, hi),
	}
	return p.candidate(), nil
}

// Text is the plain-prose question; conversions carry no code block.
func (p conversionParams) Text() string {
	switch p.Variant {
	case variantToBinary:
		return fmt.Sprintf("What is binary of decimal number %d?", p.Value)
	case variantToHex:
		return fmt.Sprintf("What is hexadecimal of decimal number %d?", p.Value)
	case variantFromBinary:
		return fmt.Sprintf("What is decimal number of binary number %s?", strconv.FormatInt(int64(p.Value), 2))
	default:
		return fmt.Sprintf("What is decimal number of hexadecimal number %s?", strconv.FormatInt(int64(p.Value), 16))
	}
}

// Answer renders the target representation: lowercase digits, no prefix.
func (p conversionParams) Answer() string {
	switch p.Variant {
	case variantToBinary:
		return strconv.FormatInt(int64(p.Value), 2)
	case variantToHex:
		return strconv.FormatInt(int64(p.Value), 16)
	}
	return strconv.Itoa(p.Value)
}

func (p conversionParams) candidate() *Candidate {
	return &Candidate{
		Question: Question{
			Text:   p.Text(),
			Answer: p.Answer(),
			// "1F" and "1f" are the same hexadecimal number.
			CaseSensitive: p.Variant != variantToHex,
		},
		Variant: p.Variant,
	}
}
