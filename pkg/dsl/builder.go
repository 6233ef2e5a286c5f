package dsl

import (
	"fmt"
	"math"

	"github.com/aretw0/lsys/pkg/domain"
)

// Builder manages the configuration construction.
type Builder struct {
	config domain.Config
	rules  map[rune]*RuleBuilder
	order  []rune
}

// New creates a new builder for the given axiom with default turtle parameters.
func New(axiom string) *Builder {
	cfg := domain.DefaultConfig()
	cfg.Axiom = axiom
	return &Builder{
		config: cfg,
		rules:  make(map[rune]*RuleBuilder),
	}
}

// Rule starts a production rule for symbol.
// If the rule already exists, it returns the existing builder.
func (b *Builder) Rule(symbol rune) *RuleBuilder {
	if rb, ok := b.rules[symbol]; ok {
		return rb
	}
	rb := &RuleBuilder{builder: b}
	b.rules[symbol] = rb
	b.order = append(b.order, symbol)
	return rb
}

// Depth sets the number of expansion passes.
func (b *Builder) Depth(depth int) *Builder {
	b.config.Depth = depth
	return b
}

// Start sets the initial turtle position.
func (b *Builder) Start(x, y float64) *Builder {
	b.config.Start = domain.Point{X: x, Y: y}
	return b
}

// Heading sets the initial heading in radians.
func (b *Builder) Heading(radians float64) *Builder {
	b.config.Heading = radians
	return b
}

// HeadingDegrees sets the initial heading in degrees.
func (b *Builder) HeadingDegrees(degrees float64) *Builder {
	return b.Heading(Radians(degrees))
}

// Turn sets the turn angle in radians.
func (b *Builder) Turn(radians float64) *Builder {
	b.config.TurnAngle = radians
	return b
}

// TurnDegrees sets the turn angle in degrees.
func (b *Builder) TurnDegrees(degrees float64) *Builder {
	return b.Turn(Radians(degrees))
}

// Step sets the distance covered by each forward symbol.
func (b *Builder) Step(length float64) *Builder {
	b.config.StepLength = length
	return b
}

// Build compiles the builder into a configuration.
func (b *Builder) Build() (domain.Config, error) {
	var errs []error
	if b.config.Depth < 0 {
		errs = append(errs, &domain.ConfigError{
			Key:    "depth",
			Reason: domain.ErrInvalidDepth.Error(),
			Value:  b.config.Depth,
		})
	}

	rules := make(domain.Rules, len(b.rules))
	for _, symbol := range b.order {
		rb := b.rules[symbol]
		if !rb.set {
			errs = append(errs, &domain.ConfigError{
				Key:    fmt.Sprintf("rules.%c", symbol),
				Reason: "rule has no production",
			})
			continue
		}
		rules[symbol] = rb.replacement
	}

	if len(errs) > 0 {
		return domain.Config{}, fmt.Errorf("failed to build config: %w", &domain.AggregateError{Errors: errs})
	}

	cfg := b.config
	cfg.Rules = rules
	return cfg, nil
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
