package domain

import (
	"errors"
	"fmt"
)

// ErrStackUnderflow is returned when a pop symbol is read with an empty turtle stack.
var ErrStackUnderflow = errors.New("turtle stack underflow")

// ErrInvalidDepth is returned when an expansion depth is negative.
var ErrInvalidDepth = errors.New("invalid expansion depth")

// ErrSymbolLimit is returned when an expansion grows past the configured limit.
var ErrSymbolLimit = errors.New("symbol limit exceeded")

// UnderflowError reports an unbalanced pop in the interpreted string.
type UnderflowError struct {
	Offset int // Index of the offending symbol
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("pop at symbol %d: %s", e.Offset, ErrStackUnderflow)
}

func (e *UnderflowError) Unwrap() error { return ErrStackUnderflow }

// InvalidDepthError reports a negative expansion depth.
type InvalidDepthError struct {
	Depth int
}

func (e *InvalidDepthError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidDepth, e.Depth)
}

func (e *InvalidDepthError) Unwrap() error { return ErrInvalidDepth }

// SymbolLimitError reports the generation at which expansion grew too large.
type SymbolLimitError struct {
	Generation int
	Length     int
	Limit      int
}

func (e *SymbolLimitError) Error() string {
	return fmt.Sprintf("generation %d has %d symbols (limit %d)", e.Generation, e.Length, e.Limit)
}

func (e *SymbolLimitError) Unwrap() error { return ErrSymbolLimit }

// ConfigError represents a single configuration field failure.
type ConfigError struct {
	Key    string // Field name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed
}

func (e *ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

// AggregateError represents multiple configuration failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d configuration errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ConfigErrors returns all failures if err is an AggregateError.
// Otherwise returns nil.
func ConfigErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
