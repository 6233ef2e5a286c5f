package lsys

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/aretw0/lsys/internal/logging"
	"github.com/aretw0/lsys/internal/runtime"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/aretw0/lsys/pkg/ports"
)

// System is the high-level entry point for the lsys library.
// It wraps the expander and the interpreter and adds hooks, logging and limits.
type System struct {
	config     domain.Config
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	maxSymbols int
	now        func() time.Time
}

// Option defines a functional option for configuring the System.
type Option func(*System)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once chains the hooks in registration order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *System) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) {
		s.logger = logger
	}
}

// WithMaxSymbols aborts expansion with domain.ErrSymbolLimit as soon as a
// generation would exceed n symbols. Zero (the default) means no limit.
func WithMaxSymbols(n int) Option {
	return func(s *System) {
		s.maxSymbols = n
	}
}

// New creates a System for the given configuration.
// The configuration is copied; later changes to cfg do not affect the System.
func New(cfg domain.Config, opts ...Option) *System {
	cfg.Rules = cfg.Rules.Clone()
	s := &System{
		config: cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Config returns a copy of the configuration.
func (s *System) Config() domain.Config {
	cfg := s.config
	cfg.Rules = s.config.Rules.Clone()
	return cfg
}

// Expand rewrites the axiom depth times and returns the result.
// OnGeneration fires after every pass.
func (s *System) Expand(ctx context.Context, depth int) (string, error) {
	if depth < 0 {
		return "", &domain.InvalidDepthError{Depth: depth}
	}

	g := s.config.Grammar()
	rules := g.Rules()
	if err := s.checkLimit(0, utf8.RuneCountInString(g.Axiom)); err != nil {
		return "", err
	}

	for gen := 1; gen <= depth; gen++ {
		length := runtime.NextLength(g.Axiom, rules)
		if err := s.checkLimit(gen, length); err != nil {
			s.logger.Warn("expansion aborted", "generation", gen, "symbols", length, "limit", s.maxSymbols)
			return "", err
		}

		if err := runtime.ExpandGrammar(g, 1); err != nil {
			return "", err
		}

		if s.hooks.OnGeneration != nil {
			s.hooks.OnGeneration(ctx, &domain.GenerationEvent{
				EventBase:  domain.EventBase{Timestamp: s.now(), Type: domain.EventGeneration},
				Generation: gen,
				Length:     length,
			})
		}
	}

	s.logger.Debug("expanded", "depth", depth, "symbols", utf8.RuneCountInString(g.Axiom))
	return g.Axiom, nil
}

func (s *System) checkLimit(gen, length int) error {
	if s.maxSymbols > 0 && length > s.maxSymbols {
		return &domain.SymbolLimitError{Generation: gen, Length: length, Limit: s.maxSymbols}
	}
	return nil
}

// Interpret runs the turtle over symbols, drawing on canvas.
// OnSegment fires for every line drawn and OnInterpret once at the end.
func (s *System) Interpret(ctx context.Context, symbols string, canvas ports.Canvas) (domain.Summary, error) {
	target := canvas
	if s.hooks.OnSegment != nil {
		target = ports.CanvasFunc(func(from, to domain.Point) {
			canvas.DrawLine(from, to)
			s.hooks.OnSegment(ctx, &domain.SegmentEvent{
				EventBase: domain.EventBase{Timestamp: s.now(), Type: domain.EventSegment},
				Segment:   domain.Segment{From: from, To: to},
			})
		})
	}

	summary, err := runtime.Interpret(symbols, s.config.Turtle(), s.config.TurnAngle, s.config.StepLength, target)

	if s.hooks.OnInterpret != nil {
		s.hooks.OnInterpret(ctx, &domain.InterpretEvent{
			EventBase: domain.EventBase{Timestamp: s.now(), Type: domain.EventInterpret},
			Summary:   summary,
			Err:       err,
		})
	}

	if err != nil {
		s.logger.Error("interpretation failed", "error", err, "segments", summary.Segments)
		return summary, fmt.Errorf("failed to interpret: %w", err)
	}
	if summary.OpenBranches > 0 {
		s.logger.Warn("interpretation ended with open branches", "open", summary.OpenBranches)
	}
	s.logger.Debug("interpreted", "symbols", summary.Symbols, "segments", summary.Segments)
	return summary, nil
}

// Render expands the axiom to the configured depth and interprets the result.
func (s *System) Render(ctx context.Context, canvas ports.Canvas) (domain.Summary, error) {
	symbols, err := s.Expand(ctx, s.config.Depth)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to expand: %w", err)
	}
	return s.Interpret(ctx, symbols, canvas)
}
