// Package bank aggregates generated and static questions into the pool a
// quiz draws from.
package bank

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// ErrNoSubtopics means none of the requested subtopics has a generator
// or a static question. The quiz cannot start.
var ErrNoSubtopics = errors.New("no subtopics available")

// DefaultAllSubtopics is the mix used when "all" is requested.
var DefaultAllSubtopics = []problemgen.Subtopic{
	problemgen.SubtopicArithmetic,
	problemgen.SubtopicConditionals,
	problemgen.SubtopicLoops,
	problemgen.SubtopicLists,
	problemgen.SubtopicConversion,
}

// Bank is one built pool of questions. It is not modified after Build.
type Bank struct {
	ID        string
	Questions []problemgen.Question
	Reports   []problemgen.Report
}

// Filter returns the questions matching all the given criteria.
func (b *Bank) Filter(topic string, sub problemgen.Subtopic, d problemgen.Difficulty) []problemgen.Question {
	return Filter(b.Questions, topic, sub, d)
}

// Filter keeps the questions matching topic, subtopic and difficulty. An
// empty criterion, or SubtopicAll, matches everything.
func Filter(qs []problemgen.Question, topic string, sub problemgen.Subtopic, d problemgen.Difficulty) []problemgen.Question {
	var out []problemgen.Question
	for _, q := range qs {
		if topic != "" && q.Topic != topic {
			continue
		}
		if sub != "" && sub != problemgen.SubtopicAll && q.Subtopic != sub {
			continue
		}
		if d != "" && q.Difficulty != d {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Allocation is one subtopic's share of a mixed quiz.
type Allocation struct {
	Subtopic problemgen.Subtopic
	Count    int
}

// Apportion splits total across subs as evenly as possible. The remainder
// goes to the first subtopics, one each.
func Apportion(total int, subs []problemgen.Subtopic) []Allocation {
	if len(subs) == 0 || total <= 0 {
		return nil
	}
	base, rem := total/len(subs), total%len(subs)
	out := make([]Allocation, len(subs))
	for i, sub := range subs {
		out[i] = Allocation{Subtopic: sub, Count: base}
		if i < rem {
			out[i].Count++
		}
	}
	return out
}

// Builder turns requests into Banks.
type Builder struct {
	engine *problemgen.Engine
	static []problemgen.Question
	all    []problemgen.Subtopic
	log    *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithStatic merges questions loaded from bank files into every build.
func WithStatic(qs []problemgen.Question) BuilderOption {
	return func(b *Builder) { b.static = qs }
}

// WithAllSubtopics sets the mix used for "all".
func WithAllSubtopics(subs []problemgen.Subtopic) BuilderOption {
	return func(b *Builder) {
		if len(subs) > 0 {
			b.all = subs
		}
	}
}

// WithLogger sets the logger. Defaults to the engine's.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBuilder returns a Builder drawing from engine.
func NewBuilder(engine *problemgen.Engine, opts ...BuilderOption) *Builder {
	b := &Builder{
		engine: engine,
		all:    DefaultAllSubtopics,
		log:    engine.Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates the requested count per subtopic at difficulty d and
// merges matching static questions. Allocations are built in order; a
// subtopic without a generator contributes nothing and is logged.
func (b *Builder) Build(ctx context.Context, d problemgen.Difficulty, allocs []Allocation) (*Bank, error) {
	bk := &Bank{ID: b.engine.Sampler().NewID()}
	seen := make(map[string]bool)
	available := 0

	for _, a := range allocs {
		qs, rep, err := b.engine.Generate(ctx, a.Subtopic, d, a.Count)
		switch {
		case errors.Is(err, problemgen.ErrGeneratorUnavailable):
			b.log.Warn("generator unavailable", zap.String("subtopic", string(a.Subtopic)))
		case err != nil:
			return nil, fmt.Errorf("build %s: %w", a.Subtopic, err)
		default:
			available++
			bk.Reports = append(bk.Reports, rep)
		}

		static := Filter(b.static, "", a.Subtopic, d)
		if len(static) > 0 && err != nil {
			available++
		}
		for _, q := range append(qs, static...) {
			if seen[q.Text] {
				continue
			}
			seen[q.Text] = true
			bk.Questions = append(bk.Questions, q)
		}
	}
	if available == 0 {
		return nil, ErrNoSubtopics
	}

	b.log.Info("bank built",
		zap.String("bank_id", bk.ID),
		zap.String("difficulty", string(d)),
		zap.Int("questions", len(bk.Questions)),
		zap.Any("per_subtopic", countBySubtopic(bk.Questions)))
	return bk, nil
}

// BuildQuiz builds the pool for one quiz. For SubtopicAll the count is
// apportioned across the configured mix and the result shuffled.
func (b *Builder) BuildQuiz(ctx context.Context, sub problemgen.Subtopic, d problemgen.Difficulty, count int) (*Bank, error) {
	allocs := []Allocation{{Subtopic: sub, Count: count}}
	if sub == problemgen.SubtopicAll {
		allocs = Apportion(count, b.all)
	}
	bk, err := b.Build(ctx, d, allocs)
	if err != nil {
		return nil, err
	}
	if sub == problemgen.SubtopicAll {
		problemgen.Shuffle(b.engine.Sampler(), bk.Questions)
	}
	return bk, nil
}

func countBySubtopic(qs []problemgen.Question) map[string]int {
	out := make(map[string]int)
	for _, q := range qs {
		out[string(q.Subtopic)]++
	}
	return out
}
