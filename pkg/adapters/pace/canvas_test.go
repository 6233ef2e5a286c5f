package pace_test

import (
	"testing"
	"time"

	"github.com/aretw0/lsys/pkg/adapters/memory"
	"github.com/aretw0/lsys/pkg/adapters/pace"
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanvas_DelaysEachDraw(t *testing.T) {
	rec := memory.NewRecorder()
	var slept []time.Duration

	c := pace.Wrap(rec, 10*time.Millisecond, pace.WithSleeper(func(d time.Duration) {
		// The segment must not be drawn before the pause
		assert.Equal(t, len(slept), rec.Len())
		slept = append(slept, d)
	}))

	c.DrawLine(domain.Point{}, domain.Point{X: 1})
	c.DrawLine(domain.Point{X: 1}, domain.Point{X: 2})

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, slept)
	assert.Equal(t, 2, rec.Len())
}

func TestCanvas_ZeroDelay(t *testing.T) {
	rec := memory.NewRecorder()
	c := pace.Wrap(rec, 0, pace.WithSleeper(func(time.Duration) {
		t.Fatal("sleep must not be called without a delay")
	}))

	c.DrawLine(domain.Point{}, domain.Point{Y: 1})
	assert.Equal(t, 1, rec.Len())
}
