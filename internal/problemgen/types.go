package problemgen

import "fmt"

// DefaultTopic is the subject domain every generated question belongs to.
const DefaultTopic = "python"

// Question is one quiz record. Generated questions are always fill-in;
// multiple-choice records only come from static banks.
type Question struct {
	// ID identifies the record within a bank. Generated questions get a
	// fresh UUID.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	Topic      string     `json:"topic" yaml:"topic"`
	Subtopic   Subtopic   `json:"subtopic" yaml:"subtopic"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Type       Type       `json:"type" yaml:"type"`

	// Text is the display text: a prompt, optionally followed by a fenced
	// Python snippet.
	Text string `json:"question" yaml:"question"`

	// Answer is the exact expected output.
	Answer string `json:"answer" yaml:"answer"`

	// CaseSensitive is false only for hexadecimal answers.
	CaseSensitive bool `json:"caseSensitive" yaml:"caseSensitive"`

	// Options and Correct are set for TypeMultiple only. Correct indexes
	// into Options.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
	Correct *int     `json:"correct,omitempty" yaml:"correct,omitempty"`
}

// IsMultipleChoice reports whether the learner picks from Options.
func (q *Question) IsMultipleChoice() bool { return q.Type == TypeMultiple }

// CorrectOption returns the text of the correct option for a
// multiple-choice question.
func (q *Question) CorrectOption() (string, bool) {
	if !q.IsMultipleChoice() || q.Correct == nil || *q.Correct < 0 || *q.Correct >= len(q.Options) {
		return "", false
	}
	return q.Options[*q.Correct], true
}

// Type is the answer-input mode.
type Type string

const (
	TypeFill     Type = "fill"
	TypeMultiple Type = "multiple"
)

// Valid reports whether t is a known type.
func (t Type) Valid() bool { return t == TypeFill || t == TypeMultiple }

// Subtopic is a question family.
type Subtopic string

const (
	SubtopicArithmetic      Subtopic = "arithmetic"
	SubtopicConditionals    Subtopic = "conditionals"
	SubtopicLoops           Subtopic = "loops"
	SubtopicLists           Subtopic = "lists"
	SubtopicConversion      Subtopic = "conversion"
	SubtopicBasicAlgorithms Subtopic = "basic-algorithms"

	// SubtopicAll asks the bank for a mix across subtopics. It never
	// appears on a Question.
	SubtopicAll Subtopic = "all"
)

// AllSubtopics returns every concrete subtopic in display order.
func AllSubtopics() []Subtopic {
	return []Subtopic{
		SubtopicArithmetic,
		SubtopicConditionals,
		SubtopicLoops,
		SubtopicLists,
		SubtopicConversion,
		SubtopicBasicAlgorithms,
	}
}

// Valid reports whether s is a concrete subtopic.
func (s Subtopic) Valid() bool {
	switch s {
	case SubtopicArithmetic, SubtopicConditionals, SubtopicLoops,
		SubtopicLists, SubtopicConversion, SubtopicBasicAlgorithms:
		return true
	}
	return false
}

// ParseSubtopic accepts a concrete subtopic or "all".
func ParseSubtopic(s string) (Subtopic, error) {
	sub := Subtopic(s)
	if sub == SubtopicAll || sub.Valid() {
		return sub, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubtopic, s)
}

// SubtopicDisplayName returns a human-readable name for a subtopic.
func SubtopicDisplayName(s Subtopic) string {
	switch s {
	case SubtopicArithmetic:
		return "Arithmetic"
	case SubtopicConditionals:
		return "Conditionals"
	case SubtopicLoops:
		return "Loops"
	case SubtopicLists:
		return "Lists"
	case SubtopicConversion:
		return "Number Conversion"
	case SubtopicBasicAlgorithms:
		return "Basic Algorithms"
	case SubtopicAll:
		return "All Topics"
	default:
		return string(s)
	}
}

// Difficulty controls structural complexity.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns the difficulties in increasing order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool { return d == Easy || d == Medium || d == Hard }

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}
