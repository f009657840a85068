// Package layout draws the frame around every screen: header, footer and
// shared blocks such as code snippets.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

// Smallest terminal the quiz renders in. Snippets are at most about 60
// columns wide and hard questions run to 15 lines.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the app name on the left, title centered and status
// (learner and running score) on the right.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  py") +
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("quiz")
	center := theme.Body.Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status + "  ")

	inner := max(width-2, 0)
	side := max((inner-lipgloss.Width(center))/2, 0)
	row := lipgloss.PlaceHorizontal(side, lipgloss.Left, left) +
		center +
		lipgloss.PlaceHorizontal(max(inner-side-lipgloss.Width(center), 0), lipgloss.Right, right)

	return bar.Width(width).Render(row)
}

// RenderFooter lists key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	sep := desc.Render("  ·  ")
	return bar.Width(width).Render("  " + strings.Join(parts, sep))
}

// RenderCode draws a snippet with line numbers in a code block. Lines are
// never wrapped: when the block would not fit in width the plain code is
// returned instead, since wrapping would change what the code means.
func RenderCode(code string, width int) string {
	if code == "" {
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(code, "\t", "    "), "\n")
	gutter := lipgloss.NewStyle().Foreground(theme.TextDim)
	digits := len(fmt.Sprint(len(lines)))

	numbered := make([]string, len(lines))
	for i, l := range lines {
		numbered[i] = gutter.Render(fmt.Sprintf("%*d  ", digits, i+1)) + l
	}
	block := theme.CodeBlock.Render(strings.Join(numbered, "\n"))
	if lipgloss.Width(block) > width {
		return strings.Join(lines, "\n")
	}
	return block
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the height in between.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
