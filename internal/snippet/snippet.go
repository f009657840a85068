// Package snippet renders Python source text for quiz questions: indented
// statement blocks, list literals and the fenced question wrapper.
package snippet

import (
	"fmt"
	"strconv"
	"strings"
)

// PromptPrint is the prompt shown above every code-reading question.
const PromptPrint = "What will this print?"

// Indent is one level of Python indentation.
const Indent = "    "

// Code accumulates source lines at the current indentation depth.
// The zero value is ready to use.
type Code struct {
	lines []string
	depth int
}

// Line appends one statement at the current depth, verbatim.
func (c *Code) Line(stmt string) *Code {
	c.lines = append(c.lines, strings.Repeat(Indent, c.depth)+stmt)
	return c
}

// Linef is Line with fmt.Sprintf formatting.
func (c *Code) Linef(format string, args ...any) *Code {
	return c.Line(fmt.Sprintf(format, args...))
}

// Blank appends an empty line.
func (c *Code) Blank() *Code {
	c.lines = append(c.lines, "")
	return c
}

// Block appends a compound statement header such as "while i <= 5:" and
// renders body one level deeper.
func (c *Code) Block(header string, body func(*Code)) *Code {
	c.Line(header)
	c.depth++
	body(c)
	c.depth--
	return c
}

// Assign appends "name = value".
func (c *Code) Assign(name string, value any) *Code {
	return c.Linef("%s = %v", name, value)
}

// Print appends "print(expr)".
func (c *Code) Print(expr string) *Code {
	return c.Line("print(" + expr + ")")
}

// String joins the lines with newlines, without a trailing newline.
func (c *Code) String() string {
	return strings.Join(c.lines, "\n")
}

// Lines returns the number of lines written so far.
func (c *Code) Lines() int { return len(c.lines) }

// IntList renders a Python list literal: "[1, -2, 3]".
func IntList(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WrappedIntList renders a list literal for "name = [...]", breaking after
// every perLine elements. Continuation lines are indented by len(name)+4
// spaces so they align with the first element.
func WrappedIntList(name string, vals []int, perLine int) string {
	if perLine <= 0 || len(vals) <= perLine {
		return IntList(vals)
	}
	pad := strings.Repeat(" ", len(name)+4)
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vals {
		b.WriteString(strconv.Itoa(v))
		if i == len(vals)-1 {
			break
		}
		if (i+1)%perLine == 0 {
			b.WriteString(",\n")
			b.WriteString(pad)
			continue
		}
		b.WriteString(", ")
	}
	b.WriteByte(']')
	return b.String()
}

// Quote renders s as a double-quoted Python string literal.
func Quote(s string) string {
	return strconv.Quote(s)
}

// StrList renders a list of string literals: `["a", "b"]`.
func StrList(vals []string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = Quote(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Fenced wraps code in a markdown fence tagged with lang.
func Fenced(lang, code string) string {
	return "```" + lang + "\n" + code + "\n```"
}

// Question builds the display text: the prompt, a blank line and the
// fenced Python snippet.
func Question(prompt, code string) string {
	return prompt + "\n\n" + Fenced("python", code)
}

// PrintQuestion is Question with PromptPrint.
func PrintQuestion(code *Code) string {
	return Question(PromptPrint, code.String())
}

// ExtractCode returns the body of the first fenced block in text, or false
// when text has none.
func ExtractCode(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	rest := text[start+3:]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return "", false
	}
	rest = rest[nl+1:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSuffix(rest[:end], "\n"), true
}

// Prompt returns the text before the first fenced block, trimmed.
func Prompt(text string) string {
	if i := strings.Index(text, "```"); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return strings.TrimSpace(text)
}
