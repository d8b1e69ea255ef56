package storage

import "context"

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on
// the more granular interfaces (PersonStore, WebhookStore) instead of this one.
type Storage interface {
	PersonStore
	WebhookStore

	// FlushAll removes every record. Test-reset only; there is no undo.
	FlushAll(ctx context.Context) error
}
