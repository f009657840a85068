package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hawarnekar/pyquiz/internal/screen"
)

// stubScreen counts Init calls and records the last message it saw.
type stubScreen struct {
	title string
	inits int
	last  tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { s.inits++; return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.last = msg
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// quizFlow builds the stack the app reaches mid-review: setup, results,
// review (the quiz itself is replaced by results on submit).
func quizFlow(t *testing.T) (*Router, map[string]*stubScreen) {
	t.Helper()
	screens := map[string]*stubScreen{}
	for _, name := range []string{"setup", "quiz", "results", "review"} {
		screens[name] = &stubScreen{title: name}
	}
	r := New(screens["setup"])
	r.Update(PushScreenMsg{Screen: screens["quiz"]})
	r.Update(ReplaceScreenMsg{Screen: screens["results"]})
	r.Update(PushScreenMsg{Screen: screens["review"]})
	return r, screens
}

func TestQuizFlowStack(t *testing.T) {
	r, s := quizFlow(t)

	if r.Depth() != 3 {
		t.Fatalf("expected setup/results/review, got depth %d", r.Depth())
	}
	if r.Active() != s["review"] {
		t.Errorf("expected review on top, got %q", r.Active().Title())
	}
	for _, name := range []string{"quiz", "results", "review"} {
		if s[name].inits != 1 {
			t.Errorf("%s: expected one Init, got %d", name, s[name].inits)
		}
	}
}

func TestPopBackToResults(t *testing.T) {
	r, s := quizFlow(t)

	r.Update(PopScreenMsg{})
	if r.Active() != s["results"] {
		t.Errorf("expected results, got %q", r.Active().Title())
	}
	if s["results"].inits != 1 {
		t.Error("pop should not re-run Init on the revealed screen")
	}
}

func TestPopNoopAtRoot(t *testing.T) {
	setup := &stubScreen{title: "setup"}
	r := New(setup)
	if cmd := r.Pop(); cmd != nil {
		t.Error("pop at root should return nil")
	}
	if r.Depth() != 1 || r.Active() != setup {
		t.Error("root must stay on the stack")
	}
}

func TestPopToRootResetsSetup(t *testing.T) {
	r, s := quizFlow(t)

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 || r.Active() != s["setup"] {
		t.Fatalf("expected only setup, got depth %d with %q", r.Depth(), r.Active().Title())
	}
	if s["setup"].inits != 1 {
		t.Errorf("root should re-run Init once, got %d", s["setup"].inits)
	}
}

func TestReplaceRoot(t *testing.T) {
	splash := &stubScreen{title: "splash"}
	setup := &stubScreen{title: "setup"}
	r := New(splash)

	r.Update(ReplaceScreenMsg{Screen: setup})
	if r.Depth() != 1 || r.Active() != setup {
		t.Fatal("replace at root should swap the root")
	}

	// PopToRoot now lands on setup, not the splash.
	r.Push(&stubScreen{title: "quiz"})
	r.PopToRoot()
	if r.Active() != setup {
		t.Errorf("expected setup as root, got %q", r.Active().Title())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, s := quizFlow(t)
	msg := tea.KeyPressMsg{Code: 'n', Text: "n"}
	r.Update(msg)

	if got, ok := s["review"].last.(tea.KeyPressMsg); !ok || got.String() != "n" {
		t.Errorf("active screen should receive the message, got %v", s["review"].last)
	}
	if s["results"].last != nil {
		t.Error("screens below the top must not receive messages")
	}
}

func TestCommandHelpers(t *testing.T) {
	quiz := &stubScreen{title: "quiz"}
	tests := []struct {
		name string
		cmd  tea.Cmd
		want tea.Msg
	}{
		{"push", Push(quiz), PushScreenMsg{Screen: quiz}},
		{"pop", Pop(), PopScreenMsg{}},
		{"replace", Replace(quiz), ReplaceScreenMsg{Screen: quiz}},
		{"pop to root", PopToRoot(), PopToRootMsg{}},
	}
	for _, tt := range tests {
		if got := tt.cmd(); got != tt.want {
			t.Errorf("%s: got %#v, want %#v", tt.name, got, tt.want)
		}
	}
}

func TestView(t *testing.T) {
	r, _ := quizFlow(t)
	if got := r.View(80, 24); got != "review" {
		t.Errorf("expected active view, got %q", got)
	}
}
