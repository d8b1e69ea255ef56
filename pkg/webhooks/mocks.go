package webhooks

import (
	"context"
	"sync"
)

// NoOpNotifier is a Notifier that does nothing.
type NoOpNotifier struct{}

// Emit does nothing.
func (n *NoOpNotifier) Emit(ctx context.Context, eventType EventType, payload interface{}) {}

// Recorder is a Notifier that records emitted events for assertions.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit records the event synchronously.
func (r *Recorder) Emit(ctx context.Context, eventType EventType, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{EventType: eventType, Payload: payload})
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ByType returns the recorded events of one type.
func (r *Recorder) ByType(eventType EventType) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}
