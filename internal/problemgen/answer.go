package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Comparison rules:
// - Surrounding whitespace on the input is ignored
// - Fill answers must match exactly, except when the question is not
//   case-sensitive (hexadecimal), where case is ignored
// - For multiple choice: matches against the option text or its 1-based
//   position
func CheckAnswer(learnerAnswer string, question *Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if question.IsMultipleChoice() {
		return checkMultipleChoice(learnerAnswer, question)
	}
	return matches(learnerAnswer, question.Answer, question.CaseSensitive)
}

// CheckOption reports whether the option at index (0-based) is correct.
func CheckOption(index int, question *Question) bool {
	return question.IsMultipleChoice() && question.Correct != nil && *question.Correct == index
}

// checkMultipleChoice checks the learner's answer against the options.
func checkMultipleChoice(learnerAnswer string, question *Question) bool {
	correct, ok := question.CorrectOption()
	if !ok {
		return false
	}

	// Try matching by position (1..len(options)).
	if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(question.Options) {
		return idx-1 == *question.Correct
	}

	return matches(learnerAnswer, strings.TrimSpace(correct), question.CaseSensitive)
}

func matches(got, want string, caseSensitive bool) bool {
	if caseSensitive {
		return got == want
	}
	return strings.EqualFold(got, want)
}
