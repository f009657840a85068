package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hawarnekar/pyquiz/internal/app"
	"github.com/hawarnekar/pyquiz/internal/screens/setup"
)

func newPlayCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "play",
		Short:       "Start a quiz in the terminal UI",
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, rt)
		},
	}
	cmd.Flags().Bool("no-splash", false, "Skip the splash screen")
	return cmd
}

// runApp builds the question pool source and launches the TUI.
func runApp(cmd *cobra.Command, rt *runtime) error {
	builder, err := rt.newBuilder(cmd.Context(), nil)
	if err != nil {
		return err
	}
	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Setup: setup.Options{
			Builder: builder,
			Count:   rt.cfg.QuestionCount,
			Logger:  rt.log.Named("quiz"),
		},
		SkipSplash: skip,
	})
}
