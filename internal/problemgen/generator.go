package problemgen

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Synthesizer draws one candidate question for a subtopic. Implementations
// hold no state between calls: every draw builds a fresh parameter set and
// derives both the snippet and the answer from it.
type Synthesizer interface {
	Subtopic() Subtopic

	// Synthesize draws one candidate. shrink counts consecutive draws that
	// were rejected for being too complex; synthesizers that support it
	// fall back to a simpler structure as it grows.
	Synthesize(s *Sampler, d Difficulty, shrink int) (*Candidate, error)

	// Admission returns the subtopic's own validators, run after the
	// engine-wide chain.
	Admission() []Validator
}

// Report summarizes one batch.
type Report struct {
	Subtopic   Subtopic       `json:"subtopic" yaml:"subtopic"`
	Difficulty Difficulty     `json:"difficulty" yaml:"difficulty"`
	Requested  int            `json:"requested" yaml:"requested"`
	Produced   int            `json:"produced" yaml:"produced"`
	Attempts   int            `json:"attempts" yaml:"attempts"`
	Rejections map[string]int `json:"rejections,omitempty" yaml:"rejections,omitempty"`
}

// Short reports whether fewer questions were produced than requested.
func (r Report) Short() bool { return r.Produced < r.Requested }

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s: %d/%d in %d attempts", r.Subtopic, r.Difficulty, r.Produced, r.Requested, r.Attempts)
	if len(r.Rejections) > 0 {
		reasons := make([]string, 0, len(r.Rejections))
		for k := range r.Rejections {
			reasons = append(reasons, k)
		}
		sort.Strings(reasons)
		b.WriteString(" (rejected:")
		for _, k := range reasons {
			fmt.Fprintf(&b, " %s=%d", k, r.Rejections[k])
		}
		b.WriteString(")")
	}
	return b.String()
}

func (r *Report) reject(reason string) {
	if r.Rejections == nil {
		r.Rejections = make(map[string]int)
	}
	r.Rejections[reason]++
}

// Observer receives a Report after every batch.
type Observer interface {
	ObserveBatch(r Report)
}

// Rejection reasons that do not come from a Validator.
const (
	ReasonInvalidExpression = "invalid-expression"
	ReasonExhausted         = "constraint-exhausted"
	ReasonDuplicate         = "duplicate"
)

// generate runs the bounded sample/validate/dedup loop for one batch.
// It never fails: a batch that runs out of attempts is returned short.
func generate(ctx context.Context, syn Synthesizer, s *Sampler, cfg Config, log *zap.Logger, d Difficulty, count int) ([]Question, Report) {
	rep := Report{Subtopic: syn.Subtopic(), Difficulty: d, Requested: count}
	if count <= 0 {
		return nil, rep
	}

	multiplier := cfg.RetryMultiplier
	if multiplier <= 0 {
		multiplier = DefaultRetryMultiplier
	}
	maxAttempts := count * multiplier
	chain := append(append([]Validator(nil), cfg.Validators...), syn.Admission()...)

	out := make([]Question, 0, count)
	seen := make(seenSet, count)
	shrink := 0
	for len(out) < count && rep.Attempts < maxAttempts {
		if ctx.Err() != nil {
			log.Debug("generation cancelled", zap.Error(ctx.Err()))
			break
		}
		rep.Attempts++

		c, err := syn.Synthesize(s, d, shrink)
		if err != nil {
			reason := ReasonExhausted
			if errors.Is(err, ErrInvalidExpression) {
				reason = ReasonInvalidExpression
			}
			shrink++
			rep.reject(reason)
			log.Debug("draw rejected", zap.String("reason", reason), zap.Error(err))
			continue
		}
		c.Question.Topic = cfg.Topic
		c.Question.Subtopic = syn.Subtopic()
		c.Question.Difficulty = d
		c.Question.Type = TypeFill

		if verr := runValidators(c, chain); verr != nil {
			if verr.Shrink {
				shrink++
			}
			rep.reject(verr.Validator)
			log.Debug("draw rejected",
				zap.String("reason", verr.Validator),
				zap.String("variant", c.Variant),
				zap.String("detail", verr.Message))
			continue
		}
		if !seen.add(c.Question.Text) {
			rep.reject(ReasonDuplicate)
			continue
		}

		c.Question.ID = s.NewID()
		out = append(out, c.Question)
		shrink = 0
	}
	rep.Produced = len(out)

	if rep.Short() {
		log.Warn("short batch",
			zap.String("subtopic", string(rep.Subtopic)),
			zap.String("difficulty", string(d)),
			zap.Int("requested", count),
			zap.Int("produced", rep.Produced),
			zap.Int("attempts", rep.Attempts))
	}
	return out, rep
}
