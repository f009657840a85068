package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/hawarnekar/pyquiz/internal/bank"
	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// newEngine builds the question engine from the loaded config. observer
// may be nil.
func (rt *runtime) newEngine(observer problemgen.Observer) *problemgen.Engine {
	var rng *rand.Rand
	if seed := rt.cfg.Generator.Seed; seed != 0 {
		rng = problemgen.NewRand(seed)
	}
	opts := []problemgen.Option{
		problemgen.WithLogger(rt.log.Named("engine")),
		problemgen.WithConfig(rt.cfg.EngineConfig()),
	}
	if observer != nil {
		opts = append(opts, problemgen.WithObserver(observer))
	}
	return problemgen.NewEngine(rng, opts...)
}

// newBuilder wires the engine, the configured "all" mix and any static
// banks into a bank builder.
func (rt *runtime) newBuilder(ctx context.Context, observer problemgen.Observer) (*bank.Builder, error) {
	opts := []bank.BuilderOption{
		bank.WithAllSubtopics(rt.cfg.Subtopics()),
		bank.WithLogger(rt.log.Named("bank")),
	}
	if paths := rt.cfg.Bank.Paths; len(paths) > 0 {
		static, err := bank.LoadFiles(ctx, paths)
		if err != nil {
			return nil, fmt.Errorf("load static banks: %w", err)
		}
		rt.log.Info("static banks loaded",
			zap.Strings("paths", paths),
			zap.Int("questions", len(static)))
		opts = append(opts, bank.WithStatic(static))
	}
	return bank.NewBuilder(rt.newEngine(observer), opts...), nil
}
