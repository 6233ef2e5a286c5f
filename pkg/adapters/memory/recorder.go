package memory

import (
	"sync"

	"github.com/aretw0/lsys/pkg/domain"
)

// Recorder implements ports.Canvas by keeping every segment in memory.
// Safe for concurrent use.
type Recorder struct {
	segments []domain.Segment
	mu       sync.RWMutex
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// DrawLine records the segment.
func (r *Recorder) DrawLine(from, to domain.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments = append(r.segments, domain.Segment{From: from, To: to})
}

// Segments returns a copy of the recorded segments in draw order.
func (r *Recorder) Segments() []domain.Segment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// Len returns the number of recorded segments.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.segments)
}
