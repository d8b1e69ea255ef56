package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// TimerScheduler implements the Scheduler interface with in-process timers.
// It backs the memory storage mode, where no SQS queue exists. Handle is set
// after construction, once the settlement service is wired up; pending timers
// fire against whatever Handle holds at that moment.
type TimerScheduler struct {
	Handle func(ctx context.Context, msg SettlementMessage) error
}

// NewInProcessScheduler creates a TimerScheduler with no handler bound yet.
func NewInProcessScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Make sure we conform to the interface
var _ Scheduler = (*TimerScheduler)(nil)

// ScheduleSettlement runs the handler after the delay on a detached timer.
// Timers do not survive a process restart; for the in-memory mode neither
// does the data.
func (s *TimerScheduler) ScheduleSettlement(ctx context.Context, msg SettlementMessage, delay time.Duration) error {
	if delay < 0 {
		delay = 0
	}

	time.AfterFunc(delay, func() {
		handle := s.Handle
		if handle == nil {
			slog.Error("no settlement handler bound, dropping message",
				"person_id", msg.PersonID, "booking_id", msg.BookingID)
			return
		}
		if err := handle(context.Background(), msg); err != nil {
			slog.Error("scheduled settlement failed",
				"person_id", msg.PersonID, "booking_id", msg.BookingID, "error", err)
		}
	})

	return nil
}
