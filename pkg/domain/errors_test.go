package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrors_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("interpret: %w", &domain.UnderflowError{Offset: 3})
	assert.True(t, errors.Is(wrapped, domain.ErrStackUnderflow))
	assert.Contains(t, wrapped.Error(), "symbol 3")

	assert.ErrorIs(t, &domain.InvalidDepthError{Depth: -1}, domain.ErrInvalidDepth)
	assert.ErrorIs(t, &domain.SymbolLimitError{Generation: 2, Length: 50, Limit: 10}, domain.ErrSymbolLimit)
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnSegment: func(context.Context, *domain.SegmentEvent) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnSegment:    func(context.Context, *domain.SegmentEvent) { calls = append(calls, "b") },
		OnGeneration: func(context.Context, *domain.GenerationEvent) { calls = append(calls, "gen") },
	}

	merged := a.Merge(b)
	merged.OnSegment(context.Background(), &domain.SegmentEvent{})
	merged.OnGeneration(context.Background(), &domain.GenerationEvent{})

	assert.Equal(t, []string{"a", "b", "gen"}, calls)
	assert.Nil(t, merged.OnInterpret)
}
