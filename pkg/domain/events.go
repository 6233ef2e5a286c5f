package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGeneration EventType = "generation"
	EventSegment    EventType = "segment"
	EventInterpret  EventType = "interpret"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// GenerationEvent is emitted after each expansion pass.
type GenerationEvent struct {
	EventBase
	Generation int `json:"generation"` // 1-based pass number
	Length     int `json:"length"`     // Symbols after the pass
}

// SegmentEvent is emitted for each line handed to the canvas.
type SegmentEvent struct {
	EventBase
	Segment Segment `json:"segment"`
}

// InterpretEvent is emitted when interpretation stops, successfully or not.
type InterpretEvent struct {
	EventBase
	Summary Summary `json:"summary"`
	Err     error   `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnGeneration func(context.Context, *GenerationEvent)
	OnSegment    func(context.Context, *SegmentEvent)
	OnInterpret  func(context.Context, *InterpretEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnGeneration: chain(h.OnGeneration, other.OnGeneration),
		OnSegment:    chain(h.OnSegment, other.OnSegment),
		OnInterpret:  chain(h.OnInterpret, other.OnInterpret),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
