package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hawarnekar/pyquiz/internal/router"
	"github.com/hawarnekar/pyquiz/internal/screen"
	"github.com/hawarnekar/pyquiz/internal/screens/setup"
	"github.com/hawarnekar/pyquiz/internal/screens/welcome"
	"github.com/hawarnekar/pyquiz/internal/ui/layout"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct {
	title   string
	back    bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                   { return "stub content" }
func (s *stubScreen) Title() string                          { return s.title }
func (s *stubScreen) HandlesBack() bool                      { return s.back }
func (s *stubScreen) Status() string                         { return "3/5" }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "F1", Description: "Stub"}}
}

func esc() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func TestStartsAtSplash(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected splash screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("splash should start its animation")
	}

	m = newAppModel(Options{SkipSplash: true})
	if _, ok := m.router.Active().(*setup.SetupScreen); !ok {
		t.Errorf("expected setup screen, got %T", m.router.Active())
	}
}

func TestEscPopsPlainScreens(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	m.router.Push(&stubScreen{title: "Stub"})

	_, cmd := m.Update(esc())
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestEscForwardedToBackHandler(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	stub := &stubScreen{title: "Stub", back: true}
	m.router.Push(stub)

	m.Update(esc())
	if stub.updates != 1 {
		t.Errorf("esc should reach the screen, got %d updates", stub.updates)
	}
	if m.router.Depth() != 2 {
		t.Errorf("screen should stay on the stack, depth %d", m.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewUsesScreenStatusAndHints(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	m.router.Push(&stubScreen{title: "Stub"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	frame := updated.(AppModel).render()
	for _, want := range []string{"Stub", "3/5", "F1", "stub content"} {
		if !strings.Contains(frame, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if frame := updated.(AppModel).render(); !strings.Contains(frame, "Terminal too small!") {
		t.Errorf("expected the resize message, got %q", frame)
	}
}
