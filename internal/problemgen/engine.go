package problemgen

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
)

// Engine generates batches of questions per subtopic. It is not safe for
// concurrent use: all draws come from one random stream.
type Engine struct {
	sampler  *Sampler
	cfg      Config
	log      *zap.Logger
	observer Observer
	synths   map[Subtopic]Synthesizer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver receives a Report after every batch.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithSubtopics registers only the given subtopics. Generating any other
// subtopic fails with ErrGeneratorUnavailable.
func WithSubtopics(subs ...Subtopic) Option {
	return func(e *Engine) {
		e.synths = make(map[Subtopic]Synthesizer, len(subs))
		for _, sub := range subs {
			if syn, err := synthesizerFor(sub); err == nil {
				e.synths[sub] = syn
			}
		}
	}
}

// WithSynthesizer registers syn for its subtopic, replacing the built-in one.
func WithSynthesizer(syn Synthesizer) Option {
	return func(e *Engine) { e.synths[syn.Subtopic()] = syn }
}

// NewEngine returns an engine drawing from rng. A nil rng is time-seeded.
func NewEngine(rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		sampler: NewSampler(rng),
		cfg:     DefaultConfig(),
		log:     zap.NewNop(),
		synths:  make(map[Subtopic]Synthesizer),
	}
	for _, sub := range AllSubtopics() {
		syn, err := synthesizerFor(sub)
		if err != nil {
			panic(err)
		}
		e.synths[sub] = syn
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg.Topic == "" {
		e.cfg.Topic = DefaultTopic
	}
	return e
}

// Generate produces up to count distinct questions for one subtopic and
// difficulty. A short batch is not an error; see Report. Errors are
// returned only for an unknown subtopic or difficulty, or when no
// generator is registered for the subtopic.
func (e *Engine) Generate(ctx context.Context, sub Subtopic, d Difficulty, count int) ([]Question, Report, error) {
	rep := Report{Subtopic: sub, Difficulty: d, Requested: count}
	if !d.Valid() {
		return nil, rep, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	if !sub.Valid() {
		return nil, rep, fmt.Errorf("%w: %q", ErrUnknownSubtopic, sub)
	}
	syn, ok := e.synths[sub]
	if !ok {
		return nil, rep, fmt.Errorf("%w: %s", ErrGeneratorUnavailable, sub)
	}

	qs, rep := generate(ctx, syn, e.sampler, e.cfg, e.log, d, count)
	if e.observer != nil {
		e.observer.ObserveBatch(rep)
	}
	return qs, rep, nil
}

// Available lists the registered subtopics in display order.
func (e *Engine) Available() []Subtopic {
	var out []Subtopic
	for _, sub := range AllSubtopics() {
		if _, ok := e.synths[sub]; ok {
			out = append(out, sub)
		}
	}
	return out
}

// Sampler exposes the engine's random stream so callers that shuffle or
// apportion batches draw from the same source.
func (e *Engine) Sampler() *Sampler { return e.sampler }

// Logger returns the engine's logger.
func (e *Engine) Logger() *zap.Logger { return e.log }

// synthesizerFor maps a subtopic to its built-in synthesizer.
func synthesizerFor(sub Subtopic) (Synthesizer, error) {
	switch sub {
	case SubtopicArithmetic:
		return arithmeticSynth{}, nil
	case SubtopicConditionals:
		return conditionalsSynth{}, nil
	case SubtopicLoops:
		return loopsSynth{}, nil
	case SubtopicLists:
		return listsSynth{}, nil
	case SubtopicConversion:
		return conversionSynth{}, nil
	case SubtopicBasicAlgorithms:
		return algorithmsSynth{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSubtopic, sub)
}
