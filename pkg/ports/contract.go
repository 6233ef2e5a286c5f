package ports

import (
	"testing"

	"github.com/aretw0/lsys/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RecordingCanvas is a Canvas that also reports what it drew.
type RecordingCanvas interface {
	Canvas
	SegmentSource
}

// RunCanvasContract runs a suite of tests to verify that a recording canvas
// keeps segments in draw order and returns them as copies.
// newCanvas must return an empty canvas on every call.
func RunCanvasContract(t *testing.T, newCanvas func() RecordingCanvas) {
	t.Run("Empty", func(t *testing.T) {
		c := newCanvas()
		assert.Empty(t, c.Segments())
	})

	t.Run("Draw Order", func(t *testing.T) {
		c := newCanvas()
		c.DrawLine(domain.Point{X: 0, Y: 0}, domain.Point{X: 10, Y: 0})
		c.DrawLine(domain.Point{X: 10, Y: 0}, domain.Point{X: 10, Y: -5.5})

		segs := c.Segments()
		require.Len(t, segs, 2)
		assert.Equal(t, domain.Segment{From: domain.Point{X: 0, Y: 0}, To: domain.Point{X: 10, Y: 0}}, segs[0])
		assert.Equal(t, domain.Point{X: 10, Y: -5.5}, segs[1].To)
	})

	t.Run("Segments Are Copies", func(t *testing.T) {
		c := newCanvas()
		c.DrawLine(domain.Point{}, domain.Point{X: 1})

		segs := c.Segments()
		segs[0].To.X = 99

		assert.Equal(t, 1.0, c.Segments()[0].To.X)
	})
}
