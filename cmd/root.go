package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hawarnekar/pyquiz/internal/config"
	"github.com/hawarnekar/pyquiz/internal/logging"
)

// tuiAnnotation marks commands that hand the terminal to Bubble Tea.
const tuiAnnotation = "tui"

// runtime holds what PersistentPreRunE resolved for the subcommands.
type runtime struct {
	v   *viper.Viper
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{v: config.New()}

	root := &cobra.Command{
		Use:   "pyquiz",
		Short: "Python code reading quiz",
		Long: `pyquiz generates short Python snippets and asks what they print.

Every answer is computed by evaluating the generated program, so questions
can be produced in any number without a curated list.`,
		SilenceUsage:      true,
		Annotations:       map[string]string{tuiAnnotation: "true"},
		PersistentPreRunE: rt.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, rt)
		},
	}

	root.Flags().Bool("no-splash", false, "Skip the splash screen")

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (default: pyquiz.yaml in ., ./config or the user config dir)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.Uint64("seed", 0, "Random seed; 0 seeds from the clock")
	pf.StringSlice("bank", nil, "Static bank file merged into the question pool (repeatable)")
	_ = rt.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = rt.v.BindPFlag("generator.seed", pf.Lookup("seed"))
	_ = rt.v.BindPFlag("bank.paths", pf.Lookup("bank"))

	root.AddCommand(
		newPlayCmd(rt),
		newGenerateCmd(rt),
		newPreviewCmd(rt),
		newBankCmd(),
		newStatsCmd(rt),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (rt *runtime) setup(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(rt.v, file)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cfg.Env, logging.Options{
		Console: cmd.ErrOrStderr(),
		Quiet:   cmd.Annotations[tuiAnnotation] == "true",
	})
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.log = log
	log.Debug("config loaded",
		zap.String("env", cfg.Env),
		zap.String("config_file", rt.v.ConfigFileUsed()),
		zap.Uint64("seed", cfg.Generator.Seed))
	return nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
