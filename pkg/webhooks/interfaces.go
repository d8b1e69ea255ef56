package webhooks

import "context"

// Notifier emits asynchronous event notifications to the registered
// subscriber. Emission is fire-and-forget: it must never block the state
// transition it describes, and delivery failures never surface to the caller.
type Notifier interface {
	Emit(ctx context.Context, eventType EventType, payload interface{})
}
