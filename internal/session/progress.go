package session

import "github.com/hawarnekar/pyquiz/internal/problemgen"

// SubtopicProgress tracks answers for one subtopic within a quiz.
type SubtopicProgress struct {
	Subtopic problemgen.Subtopic
	Answered int
	Correct  int
	Accuracy float64 // Correct / Answered (computed)
}

// Record adds one submitted answer.
func (p *SubtopicProgress) Record(correct bool) {
	p.Answered++
	if correct {
		p.Correct++
	}
	p.Accuracy = float64(p.Correct) / float64(p.Answered)
}
