package metrics_test

import (
	"context"
	"testing"

	"github.com/aretw0/lsys/internal/metrics"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	hooks := c.Hooks()
	ctx := context.Background()

	hooks.OnGeneration(ctx, &domain.GenerationEvent{Generation: 1, Length: 11})
	hooks.OnGeneration(ctx, &domain.GenerationEvent{Generation: 2, Length: 61})
	for i := 0; i < 3; i++ {
		hooks.OnSegment(ctx, &domain.SegmentEvent{})
	}
	hooks.OnInterpret(ctx, &domain.InterpretEvent{Summary: domain.Summary{Symbols: 61, OpenBranches: 2}})
	hooks.OnInterpret(ctx, &domain.InterpretEvent{Err: &domain.UnderflowError{Offset: 0}})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Generations))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Segments))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.OpenBranches))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Interpreted.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Interpreted.WithLabelValues(metrics.OutcomeUnderflow)))
	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 6, count)
}
