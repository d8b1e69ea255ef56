// Package cards implements the card reservation engine: it turns card spend
// attempts into balance holds, enforces card status, funds and usage limits,
// and books or declines the resulting authorizations.
package cards

import (
	"time"

	"github.com/bankmock/bankmock/pkg/locks"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/webhooks"
)

// Service is the reservation engine. All state transitions run under the
// per-person lock for the whole load-validate-mutate-persist sequence, so
// concurrent spends against one account cannot both pass the same balance check.
type Service struct {
	Store    storage.PersonStore
	Notifier webhooks.Notifier
	Locks    *locks.KeyedMutex

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// NewService creates a reservation engine.
func NewService(store storage.PersonStore, notifier webhooks.Notifier, keyedLocks *locks.KeyedMutex) *Service {
	return &Service{
		Store:    store,
		Notifier: notifier,
		Locks:    keyedLocks,
		Now:      time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
