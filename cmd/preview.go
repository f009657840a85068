package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hawarnekar/pyquiz/internal/bank"
	"github.com/hawarnekar/pyquiz/internal/problemgen"
	sess "github.com/hawarnekar/pyquiz/internal/session"
	"github.com/hawarnekar/pyquiz/internal/snippet"
)

func newPreviewCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Take a quiz on plain stdin/stdout",
		Long: `Generate questions and answer them one by one on the console.

Nothing is stored. Useful for checking question quality without the
terminal UI, or for piping answers in from a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreviewCmd(cmd, rt)
		},
	}
	f := cmd.Flags()
	f.String("name", "learner", "Learner name shown in the summary")
	f.String("subtopic", string(problemgen.SubtopicArithmetic), "Subtopic, or all")
	f.String("difficulty", string(problemgen.Easy), "Difficulty: easy, medium or hard")
	f.Int("count", 5, "Number of questions")
	f.Bool("review", false, "List every missed question after the summary")
	return cmd
}

func runPreviewCmd(cmd *cobra.Command, rt *runtime) error {
	name, _ := cmd.Flags().GetString("name")
	subVal, _ := cmd.Flags().GetString("subtopic")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	review, _ := cmd.Flags().GetBool("review")

	sub, err := problemgen.ParseSubtopic(subVal)
	if err != nil {
		return err
	}
	d, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	plan, err := sess.NewPlan(name, sub, d, count)
	if err != nil {
		return err
	}
	builder, err := rt.newBuilder(cmd.Context(), nil)
	if err != nil {
		return err
	}
	return runPreview(cmd.Context(), builder, plan, cmd.InOrStdin(), cmd.OutOrStdout(), review)
}

// quizBuilder is the part of bank.Builder the console loop needs.
type quizBuilder interface {
	BuildQuiz(ctx context.Context, sub problemgen.Subtopic, d problemgen.Difficulty, count int) (*bank.Bank, error)
}

// runPreview asks every question of a freshly built quiz on out, reading
// answers line by line from in. Closing in ends the quiz early.
func runPreview(ctx context.Context, builder quizBuilder, plan *sess.Plan, in io.Reader, out io.Writer, review bool) error {
	b, err := builder.BuildQuiz(ctx, plan.Subtopic, plan.Difficulty, plan.Count)
	if err != nil {
		return err
	}
	state, err := sess.New(plan, b.Questions)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	total := len(state.Questions)
	fmt.Fprintf(out, "%s: %d %s questions (%s)\n\n",
		plan.Learner, total, plan.Difficulty, problemgen.SubtopicDisplayName(plan.Subtopic))

questions:
	for {
		q := state.CurrentQuestion()
		fmt.Fprintf(out, "── Question %d/%d ──\n", state.Current+1, total)
		printQuestion(out, q)

		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				break questions
			}
			correct, err := sess.HandleAnswer(state, scanner.Text())
			if errors.Is(err, sess.ErrEmptyAnswer) {
				fmt.Fprintln(out, "Type what the code prints.")
				continue
			}
			if err != nil {
				return err
			}
			if correct {
				fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
			} else {
				fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", expectedAnswer(q))
			}
			break
		}
		fmt.Fprintln(out)

		if !sess.Next(state) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	if state.AllAnswered() {
		if err := sess.Submit(state); err != nil {
			return err
		}
	}

	printSummary(out, sess.BuildSummary(state))
	if review && state.Phase == sess.PhaseResults {
		if err := sess.StartReview(state); err != nil {
			return err
		}
		printMistakes(out, sess.BuildReview(state))
	}
	return nil
}

func printQuestion(out io.Writer, q *problemgen.Question) {
	fmt.Fprintln(out, snippet.Prompt(q.Text))
	if code, ok := snippet.ExtractCode(q.Text); ok {
		fmt.Fprintln(out)
		for _, line := range strings.Split(code, "\n") {
			fmt.Fprintln(out, "    "+line)
		}
	}
	if q.IsMultipleChoice() {
		fmt.Fprintln(out)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o)
		}
	}
}

func expectedAnswer(q *problemgen.Question) string {
	if opt, ok := q.CorrectOption(); ok {
		return opt
	}
	return q.Answer
}

func printSummary(out io.Writer, sum *sess.SessionSummary) {
	fmt.Fprintf(out, "── Summary: %d/%d correct (%d%%) in %d min ──\n",
		sum.Correct, sum.Total, sum.Percent, sum.Minutes)
	if len(sum.Subtopics) > 1 {
		for _, p := range sum.Subtopics {
			fmt.Fprintf(out, "  %-18s %d/%d\n", problemgen.SubtopicDisplayName(p.Subtopic), p.Correct, p.Answered)
		}
	}
}

func printMistakes(out io.Writer, items []sess.ReviewItem) {
	for _, it := range items {
		if it.Correct {
			continue
		}
		fmt.Fprintf(out, "\n#%d %s\n", it.Number, it.Prompt)
		if it.Code != "" {
			for _, line := range strings.Split(it.Code, "\n") {
				fmt.Fprintln(out, "    "+line)
			}
		}
		fmt.Fprintf(out, "  yours: %s  expected: %s\n", it.Given, it.Expected)
	}
}
