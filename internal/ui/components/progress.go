package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// ProgressBar draws Done out of Total as a bar with a suffix: the count
// ("3/25") when ShowCount is set, otherwise the rounded percentage.
type ProgressBar struct {
	Label     string
	Done      int
	Total     int
	ShowCount bool
	Width     int
}

// NewProgressBar creates a bar of the given total width.
func NewProgressBar(label string, done, total int, showCount bool, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Done:      done,
		Total:     total,
		ShowCount: showCount,
		Width:     width,
	}
}

// Ratio is Done/Total clamped to [0, 1]. An empty bar has ratio 0.
func (p ProgressBar) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, float64(p.Done)/float64(p.Total)))
}

func (p ProgressBar) suffix() string {
	if p.ShowCount {
		return fmt.Sprintf(" %d/%d", p.Done, p.Total)
	}
	return fmt.Sprintf(" %3d%%", int(math.Round(p.Ratio()*100)))
}

// View renders the bar.
func (p ProgressBar) View() string {
	var prefix string
	if p.Label != "" {
		prefix = theme.Body.Render(p.Label) + "  "
	}
	suffix := p.suffix()

	barWidth := max(p.Width-lipgloss.Width(prefix)-len(suffix), 4)
	filled := int(math.Round(float64(barWidth) * p.Ratio()))

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	return prefix + bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
