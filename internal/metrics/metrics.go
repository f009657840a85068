// Package metrics counts generated and rejected questions.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// Generation records batch reports into its own registry.
type Generation struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	attempts  *prometheus.HistogramVec
	short     *prometheus.CounterVec
}

var _ problemgen.Observer = (*Generation)(nil)

// NewGeneration registers the generation collectors on a fresh registry.
func NewGeneration() *Generation {
	g := &Generation{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pyquiz_questions_generated_total",
				Help: "Questions admitted into a batch",
			},
			[]string{"subtopic", "difficulty"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pyquiz_questions_rejected_total",
				Help: "Draws rejected, by reason",
			},
			[]string{"subtopic", "reason"},
		),
		attempts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pyquiz_generation_attempts",
				Help:    "Draws spent per admitted question in a batch",
				Buckets: []float64{1, 1.25, 1.5, 2, 3, 5, 10, 20},
			},
			[]string{"subtopic"},
		),
		short: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pyquiz_short_batches_total",
				Help: "Batches that produced fewer questions than requested",
			},
			[]string{"subtopic", "difficulty"},
		),
	}
	g.registry.MustRegister(g.generated, g.rejected, g.attempts, g.short)
	return g
}

// ObserveBatch implements problemgen.Observer.
func (g *Generation) ObserveBatch(r problemgen.Report) {
	sub, d := string(r.Subtopic), string(r.Difficulty)
	g.generated.WithLabelValues(sub, d).Add(float64(r.Produced))
	for reason, n := range r.Rejections {
		g.rejected.WithLabelValues(sub, reason).Add(float64(n))
	}
	if r.Produced > 0 {
		g.attempts.WithLabelValues(sub).Observe(float64(r.Attempts) / float64(r.Produced))
	}
	if r.Short() {
		g.short.WithLabelValues(sub, d).Inc()
	}
}

// Registry exposes the collectors, e.g. for testutil.
func (g *Generation) Registry() *prometheus.Registry { return g.registry }

// WriteText writes every metric in the Prometheus text exposition format.
func (g *Generation) WriteText(w io.Writer) error {
	families, err := g.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
