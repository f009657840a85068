package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
	"github.com/hawarnekar/pyquiz/internal/router"
	sess "github.com/hawarnekar/pyquiz/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func fill(sub problemgen.Subtopic, answer string) problemgen.Question {
	return problemgen.Question{
		Topic:         problemgen.DefaultTopic,
		Subtopic:      sub,
		Difficulty:    problemgen.Medium,
		Type:          problemgen.TypeFill,
		Text:          "What will this print?\n\n```python\nprint(" + answer + ")\n```",
		Answer:        answer,
		CaseSensitive: true,
	}
}

// submittedState answers "1", "x", "3" against answers 1, 2, 3 over two
// subtopics and submits.
func submittedState(t *testing.T) *sess.SessionState {
	t.Helper()
	plan, err := sess.NewPlan("Ada", problemgen.SubtopicAll, problemgen.Medium, 3)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	state, err := sess.New(plan, []problemgen.Question{
		fill(problemgen.SubtopicArithmetic, "1"),
		fill(problemgen.SubtopicLoops, "2"),
		fill(problemgen.SubtopicLoops, "3"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	state.StartTime = start
	state.Now = func() time.Time { return start.Add(3 * time.Minute) }

	for i, in := range []string{"1", "x", "3"} {
		state.Current = i
		if _, err := sess.HandleAnswer(state, in); err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
	}
	if err := sess.Submit(state); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return state
}

func TestResultsView(t *testing.T) {
	r := New(submittedState(t))
	view := r.View(100, 40)

	for _, want := range []string{"67%", "2 out of 3 correct", "Ada • All Topics • Medium • 3 min", "By subtopic", "Loops"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestResultsEscPopsToRoot(t *testing.T) {
	r := New(submittedState(t))
	_, cmd := r.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestResultsMenuReview(t *testing.T) {
	state := submittedState(t)
	r := New(state)

	_, cmd := r.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("review should produce a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*ReviewScreen); !ok {
		t.Errorf("expected review screen, got %T", push.Screen)
	}
	if state.Phase != sess.PhaseReview {
		t.Errorf("expected review phase, got %v", state.Phase)
	}
	if state.Current != 0 {
		t.Errorf("review should start at the first question, at %d", state.Current+1)
	}
}

func TestResultsMenuNewQuiz(t *testing.T) {
	r := New(submittedState(t))
	r.Update(specialKey(tea.KeyDown))
	_, cmd := r.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("new quiz should produce a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestReviewNavigation(t *testing.T) {
	state := submittedState(t)
	if err := sess.StartReview(state); err != nil {
		t.Fatalf("StartReview: %v", err)
	}
	rv := NewReview(state)

	if got := rv.Status(); got != "1 to revisit" {
		t.Errorf("unexpected status %q", got)
	}
	view := rv.View(80, 30)
	if !strings.Contains(view, "Question 1 of 3") || !strings.Contains(view, "✓ correct") {
		t.Errorf("unexpected first review page:\n%s", view)
	}

	rv.Update(specialKey(tea.KeyRight))
	view = rv.View(80, 30)
	if !strings.Contains(view, "✗ incorrect") || !strings.Contains(view, "Correct answer: ") {
		t.Errorf("second page should show the mistake:\n%s", view)
	}

	rv.Update(specialKey(tea.KeyLeft))
	if state.Current != 0 {
		t.Errorf("left should go back, at %d", state.Current+1)
	}

	rv.Update(keyPress('n'))
	if state.Current != 1 {
		t.Errorf("n should jump to the mistake, at %d", state.Current+1)
	}
	rv.Update(keyPress('n'))
	if state.Current != 1 {
		t.Errorf("n with no later mistake should stay, at %d", state.Current+1)
	}
}
