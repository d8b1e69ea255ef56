// Package transfers implements outgoing SEPA transfers and the delayed
// settlement of queued bookings.
package transfers

import (
	"log/slog"
	"time"

	"github.com/bankmock/bankmock/pkg/locks"
	"github.com/bankmock/bankmock/pkg/scheduler"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/webhooks"
)

// SettlementDelay is how long a queued booking waits before the scheduler
// settles it.
const SettlementDelay = 15 * time.Minute

// Service creates transfers as queued bookings and settles them later. Like
// the card engine it serializes all state transitions per person.
type Service struct {
	Store     storage.PersonStore
	Notifier  webhooks.Notifier
	Scheduler scheduler.Scheduler
	Locks     *locks.KeyedMutex
	Logger    *slog.Logger

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// NewService creates a transfer service.
func NewService(store storage.PersonStore, notifier webhooks.Notifier, sched scheduler.Scheduler, keyedLocks *locks.KeyedMutex, logger *slog.Logger) *Service {
	return &Service{
		Store:     store,
		Notifier:  notifier,
		Scheduler: sched,
		Locks:     keyedLocks,
		Logger:    logger,
		Now:       time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
