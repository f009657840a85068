// Package theme holds the colors and styles shared by every screen.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette, built around the Python blue and yellow.
var (
	Primary   = lipgloss.Color("#4B8BBE") // Python blue
	Secondary = lipgloss.Color("#FFD43B") // Python yellow
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E5E7EB") // Light gray
	TextDim   = lipgloss.Color("#9CA3AF") // Gray
	BgCard    = lipgloss.Color("#1F2937") // Charcoal
	Border    = lipgloss.Color("#374151") // Slate
	BgCode    = lipgloss.Color("#111827") // Near black
	CodeText  = lipgloss.Color("#F3F4F6") // Off white
)

// Text styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Prompt is the question sentence above a snippet.
	Prompt = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	// Answer highlights an expected output.
	Answer = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// CodeBlock frames a Python snippet with a yellow gutter.
var CodeBlock = lipgloss.NewStyle().
	Foreground(CodeText).
	Background(BgCode).
	Border(lipgloss.ThickBorder(), false, false, false, true).
	BorderForeground(Secondary).
	Padding(0, 2)

// Card is a bordered panel, used for dialogs.
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(1, 3)

// Selection and grading.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Buttons.
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
