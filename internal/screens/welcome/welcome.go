// Package welcome is the splash shown before the setup screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/router"
	"github.com/hawarnekar/pyquiz/internal/screen"
	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	typingEnd    = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// teaser is typed out one character per tick.
const teaser = `>>> for i in range(3):
...     print(i * "py")`

const teaserOutput = "\npy\npypy"

const cursor = "▌"

type tickMsg time.Time

// WelcomeScreen types a short snippet, then shows the banner and waits
// for a key.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next() on a
// keypress.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		if w.transitioned {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.next())
}

// typed returns the prefix of the teaser visible at the current tick.
func (w *WelcomeScreen) typed() string {
	if w.elapsed >= typingEnd {
		return teaser + teaserOutput
	}
	runes := []rune(teaser)
	n := len(runes) * int(w.elapsed) / int(typingEnd)
	return string(runes[:n])
}

func (w *WelcomeScreen) View(width, height int) string {
	code := w.typed()
	if w.elapsed < typingEnd || w.tickCount%10 < 5 {
		code += cursor
	}
	sections := []string{theme.CodeBlock.Render(code)}

	if w.elapsed >= typingEnd {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Read the code. Predict the output.")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
