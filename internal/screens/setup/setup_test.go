package setup

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hawarnekar/pyquiz/internal/bank"
	"github.com/hawarnekar/pyquiz/internal/problemgen"
	"github.com/hawarnekar/pyquiz/internal/router"
	"github.com/hawarnekar/pyquiz/internal/screens/quiz"
)

// fakeBuilder records the last request and returns canned questions.
type fakeBuilder struct {
	sub   problemgen.Subtopic
	diff  problemgen.Difficulty
	count int
	err   error
}

func (f *fakeBuilder) BuildQuiz(_ context.Context, sub problemgen.Subtopic, d problemgen.Difficulty, count int) (*bank.Bank, error) {
	f.sub, f.diff, f.count = sub, d, count
	if f.err != nil {
		return nil, f.err
	}
	qs := make([]problemgen.Question, count)
	for i := range qs {
		qs[i] = problemgen.Question{
			Topic:      problemgen.DefaultTopic,
			Subtopic:   problemgen.SubtopicArithmetic,
			Difficulty: d,
			Type:       problemgen.TypeFill,
			Text:       "What will this print?\n\n```python\nprint(1)\n```",
			Answer:     "1",
		}
	}
	return &bank.Bank{ID: "test", Questions: qs}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *SetupScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func testSetup(b *fakeBuilder) *SetupScreen {
	return New(Options{
		Builder: b,
		Count:   func(problemgen.Subtopic) int { return 3 },
	})
}

func TestNameValidation(t *testing.T) {
	s := testSetup(&fakeBuilder{})

	s.Update(specialKey(tea.KeyEnter))
	if s.step != stepName {
		t.Fatal("empty name should not advance")
	}
	if !strings.HasPrefix(s.errMsg, "Name: ") {
		t.Errorf("unexpected error %q", s.errMsg)
	}

	typeText(s, "Ada")
	s.Update(specialKey(tea.KeyEnter))
	if s.step != stepSubtopic {
		t.Fatalf("expected subtopic step, got %d", s.step)
	}
	if s.errMsg != "" {
		t.Errorf("error should clear, got %q", s.errMsg)
	}
}

func TestSubtopicMenuIncludesAll(t *testing.T) {
	s := testSetup(&fakeBuilder{})
	items := s.subtopics.Items
	if len(items) != len(problemgen.AllSubtopics())+1 {
		t.Fatalf("expected %d subtopics, got %d", len(problemgen.AllSubtopics())+1, len(items))
	}
	if items[len(items)-1].Label != problemgen.SubtopicDisplayName(problemgen.SubtopicAll) {
		t.Errorf("last item should be the mixed quiz, got %q", items[len(items)-1].Label)
	}
}

func TestFullFlowPushesQuiz(t *testing.T) {
	b := &fakeBuilder{}
	s := testSetup(b)

	typeText(s, "Ada")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyDown)) // Conditionals
	s.Update(specialKey(tea.KeyEnter))
	if s.step != stepDifficulty {
		t.Fatalf("expected difficulty step, got %d", s.step)
	}
	s.Update(specialKey(tea.KeyDown)) // Medium
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.step != stepBuilding {
		t.Fatalf("expected building step, got %d", s.step)
	}
	if cmd == nil {
		t.Fatal("choosing a difficulty should start the build")
	}

	ready := cmd()
	if b.sub != problemgen.SubtopicConditionals || b.diff != problemgen.Medium || b.count != 3 {
		t.Errorf("unexpected build request %s/%s/%d", b.sub, b.diff, b.count)
	}

	_, cmd = s.Update(ready)
	if cmd == nil {
		t.Fatal("a built bank should push the quiz")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*quiz.QuizScreen); !ok {
		t.Errorf("expected quiz screen, got %T", push.Screen)
	}
}

func TestBuildFailureReturnsToDifficulty(t *testing.T) {
	s := testSetup(&fakeBuilder{err: errors.New("no generator")})

	typeText(s, "Ada")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected build command")
	}
	s.Update(cmd())

	if s.step != stepDifficulty {
		t.Errorf("expected difficulty step after failure, got %d", s.step)
	}
	if !strings.Contains(s.errMsg, "no generator") {
		t.Errorf("unexpected error %q", s.errMsg)
	}
}

func TestEscGoesBack(t *testing.T) {
	s := testSetup(&fakeBuilder{})
	typeText(s, "Ada")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepSubtopic {
		t.Fatalf("expected subtopic step, got %d", s.step)
	}
	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepName {
		t.Fatalf("expected name step, got %d", s.step)
	}
	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepName {
		t.Errorf("esc on the name step should stay, got %d", s.step)
	}
}

func TestInitKeepsName(t *testing.T) {
	s := testSetup(&fakeBuilder{})
	typeText(s, "Ada")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	s.Init()
	if s.step != stepName {
		t.Errorf("Init should restart at the name step, got %d", s.step)
	}
	if s.name.Value() != "Ada" {
		t.Errorf("Init should keep the name, got %q", s.name.Value())
	}
}

func TestMissingBuilder(t *testing.T) {
	s := New(Options{})
	typeText(s, "Ada")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("no command expected without a builder")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}
