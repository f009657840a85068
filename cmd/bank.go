package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hawarnekar/pyquiz/internal/bank"
	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

func newBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Inspect static question bank files",
	}
	cmd.AddCommand(newBankValidateCmd(), newBankListCmd())
	return cmd
}

func newBankValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check bank files against the question schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				f, err := bank.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "✗ %v\n", err)
					continue
				}
				fmt.Fprintf(out, "✓ %s: %d questions (version %s)\n", path, len(f.Questions), f.Version)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d bank files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newBankListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list FILE...",
		Short: "List the questions in bank files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subVal, _ := cmd.Flags().GetString("subtopic")
			diffVal, _ := cmd.Flags().GetString("difficulty")

			var sub problemgen.Subtopic
			if subVal != "" {
				s, err := problemgen.ParseSubtopic(subVal)
				if err != nil {
					return err
				}
				sub = s
			}
			var d problemgen.Difficulty
			if diffVal != "" {
				v, err := problemgen.ParseDifficulty(diffVal)
				if err != nil {
					return err
				}
				d = v
			}

			qs, err := bank.LoadFiles(cmd.Context(), args)
			if err != nil {
				var lerr *bank.LoadError
				if errors.As(err, &lerr) {
					return fmt.Errorf("%w\nrun \"pyquiz bank validate\" for details", err)
				}
				return err
			}
			qs = bank.Filter(qs, "", sub, d)

			out := cmd.OutOrStdout()
			if len(qs) == 0 {
				fmt.Fprintln(out, "No matching questions.")
				return nil
			}
			fmt.Fprintf(out, "%-4s  %-16s  %-6s  %-8s  %-12s  %s\n",
				"#", "Subtopic", "Level", "Type", "Answer", "Question")
			fmt.Fprintln(out, strings.Repeat("─", 90))
			for i, q := range qs {
				fmt.Fprintf(out, "%-4d  %-16s  %-6s  %-8s  %-12s  %s\n",
					i+1, q.Subtopic, q.Difficulty, q.Type,
					truncate(expectedAnswer(&q), 12),
					truncate(firstLine(q.Text), 40))
			}
			return nil
		},
	}
	cmd.Flags().String("subtopic", "", "Only this subtopic")
	cmd.Flags().String("difficulty", "", "Only this difficulty")
	return cmd
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
