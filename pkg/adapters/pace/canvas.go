// Package pace provides a canvas decorator that spaces draw calls out in time,
// so the drawing can be watched as it happens.
package pace

import (
	"time"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/aretw0/lsys/pkg/ports"
)

// Canvas delays every draw call before forwarding it to the wrapped canvas.
type Canvas struct {
	next  ports.Canvas
	delay time.Duration
	sleep func(time.Duration)
}

type Option func(*Canvas)

// WithSleeper replaces time.Sleep, mostly for tests.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(c *Canvas) {
		c.sleep = sleep
	}
}

// Wrap decorates next with a fixed delay per segment.
// A zero or negative delay forwards immediately.
func Wrap(next ports.Canvas, delay time.Duration, opts ...Option) *Canvas {
	c := &Canvas{
		next:  next,
		delay: delay,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DrawLine waits for the configured delay and then draws on the wrapped canvas.
func (c *Canvas) DrawLine(from, to domain.Point) {
	if c.delay > 0 {
		c.sleep(c.delay)
	}
	c.next.DrawLine(from, to)
}
