package problemgen

import "testing"

func formatCandidate(sub Subtopic, variant, answer string) *Candidate {
	q := validQuestion()
	q.Subtopic = sub
	q.Answer = answer
	return &Candidate{Question: *q, Variant: variant}
}

func TestAnswerFormat_General(t *testing.T) {
	v := &AnswerFormatValidator{}

	valid := []string{"42", "-5", "9.0", "ans = 7", "Bravo", "True"}
	for _, a := range valid {
		if err := v.Validate(formatCandidate(SubtopicArithmetic, "", a)); err != nil {
			t.Errorf("expected %q to be valid, got: %v", a, err)
		}
	}

	invalid := []string{" 42", "42 ", "4\n2", "0x1f", "0b101", "-0x3"}
	for _, a := range invalid {
		if err := v.Validate(formatCandidate(SubtopicArithmetic, "", a)); err == nil {
			t.Errorf("expected %q to be invalid", a)
		}
	}
}

func TestAnswerFormat_Conversion(t *testing.T) {
	v := &AnswerFormatValidator{}

	tests := []struct {
		variant string
		answer  string
		ok      bool
	}{
		{variantToBinary, "10110", true},
		{variantToBinary, "102", false},
		{variantToHex, "ff", true},
		{variantToHex, "FF", false},
		{variantToHex, "fg", false},
		{variantFromBinary, "22", true},
		{variantFromHex, "255", true},
		{variantFromHex, "ff", false},
	}
	for _, tc := range tests {
		err := v.Validate(formatCandidate(SubtopicConversion, tc.variant, tc.answer))
		if (err == nil) != tc.ok {
			t.Errorf("%s %q: got err=%v, want ok=%v", tc.variant, tc.answer, err, tc.ok)
		}
	}
}
