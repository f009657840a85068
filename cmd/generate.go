package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hawarnekar/pyquiz/internal/bank"
	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

func newGenerateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a question bank and print it",
		Long: `Generate questions for one subtopic (or "all") and write them to stdout
as a bank document that "pyquiz bank" and --bank can read back.`,
		Example: `  pyquiz generate --subtopic loops --difficulty hard --count 10
  pyquiz generate --subtopic all --count 50 --seed 7 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rt)
		},
	}
	f := cmd.Flags()
	f.String("subtopic", string(problemgen.SubtopicAll), "Subtopic, or all")
	f.String("difficulty", string(problemgen.Easy), "Difficulty: easy, medium or hard")
	f.Int("count", 0, "Number of questions (default: the quiz length from config)")
	f.String("format", string(bank.FormatJSON), "Output format: json or yaml")
	f.Bool("report", false, "Print a generation report per subtopic to stderr")
	return cmd
}

func runGenerate(cmd *cobra.Command, rt *runtime) error {
	subVal, _ := cmd.Flags().GetString("subtopic")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	formatVal, _ := cmd.Flags().GetString("format")
	report, _ := cmd.Flags().GetBool("report")

	sub, err := problemgen.ParseSubtopic(subVal)
	if err != nil {
		return err
	}
	d, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	format, err := bank.ParseFormat(formatVal)
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}
	if count == 0 {
		count = rt.cfg.QuestionCount(sub)
	}

	builder, err := rt.newBuilder(cmd.Context(), nil)
	if err != nil {
		return err
	}
	b, err := builder.BuildQuiz(cmd.Context(), sub, d, count)
	if err != nil {
		return err
	}

	if report {
		for _, r := range b.Reports {
			fmt.Fprintln(cmd.ErrOrStderr(), r.String())
		}
	}
	return bank.Write(cmd.OutOrStdout(), bank.NewFile(rt.cfg.Quiz.Topic, b.Questions), format)
}
