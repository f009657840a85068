package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hawarnekar/pyquiz/internal/metrics"
	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

func newStatsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate a batch per subtopic and difficulty and print generation metrics",
		Long: `Run every generator at every difficulty and print the Prometheus text
exposition of the resulting counters: questions produced, draws rejected
by reason and attempts per question.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			gen := metrics.NewGeneration()
			engine := rt.newEngine(gen)
			for _, sub := range engine.Available() {
				for _, d := range problemgen.AllDifficulties() {
					if _, _, err := engine.Generate(cmd.Context(), sub, d, count); err != nil {
						return err
					}
				}
			}
			return gen.WriteText(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int("count", 20, "Questions per subtopic and difficulty")
	return cmd
}
