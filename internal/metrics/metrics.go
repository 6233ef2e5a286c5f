// Package metrics exposes Prometheus collectors fed by engine lifecycle hooks.
package metrics

import (
	"context"
	"errors"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector groups the engine metrics.
type Collector struct {
	Generations  prometheus.Counter
	Symbols      prometheus.Histogram
	Segments     prometheus.Counter
	Interpreted  *prometheus.CounterVec
	OpenBranches prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsys_generations_total",
			Help: "Total number of expansion passes",
		}),
		Symbols: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lsys_interpreted_symbols",
			Help:    "Length of the symbol strings handed to the interpreter",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		Segments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsys_segments_drawn_total",
			Help: "Total number of line segments drawn",
		}),
		Interpreted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lsys_interpretations_total",
			Help: "Interpretations by outcome",
		}, []string{"outcome"}),
		OpenBranches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsys_open_branches_total",
			Help: "Saved states left on the stack when interpretation ended",
		}),
	}
	reg.MustRegister(c.Generations, c.Symbols, c.Segments, c.Interpreted, c.OpenBranches)
	return c
}

// Outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeUnderflow = "underflow"
	OutcomeError     = "error"
)

// Hooks returns lifecycle hooks that record into the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGeneration: func(_ context.Context, _ *domain.GenerationEvent) {
			c.Generations.Inc()
		},
		OnSegment: func(_ context.Context, _ *domain.SegmentEvent) {
			c.Segments.Inc()
		},
		OnInterpret: func(_ context.Context, e *domain.InterpretEvent) {
			c.Symbols.Observe(float64(e.Summary.Symbols))
			c.OpenBranches.Add(float64(e.Summary.OpenBranches))
			switch {
			case e.Err == nil:
				c.Interpreted.WithLabelValues(OutcomeOK).Inc()
			case errors.Is(e.Err, domain.ErrStackUnderflow):
				c.Interpreted.WithLabelValues(OutcomeUnderflow).Inc()
			default:
				c.Interpreted.WithLabelValues(OutcomeError).Inc()
			}
		},
	}
}
