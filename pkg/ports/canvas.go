package ports

import "github.com/aretw0/lsys/pkg/domain"

// Canvas is the drawing surface the interpreter emits lines to.
// Color, pen width and pacing are implementation concerns.
type Canvas interface {
	// DrawLine draws a segment between two points.
	DrawLine(from, to domain.Point)
}

// CanvasFunc adapts a plain function to the Canvas interface.
type CanvasFunc func(from, to domain.Point)

// DrawLine calls f(from, to).
func (f CanvasFunc) DrawLine(from, to domain.Point) { f(from, to) }

// SegmentSource is implemented by canvases that keep what was drawn.
type SegmentSource interface {
	Segments() []domain.Segment
}
