package scheduler

import (
	"context"
	"time"
)

// SettlementMessage identifies one queued booking awaiting settlement.
type SettlementMessage struct {
	PersonID  string `json:"person_id"`
	BookingID string `json:"booking_id"`
}

// Scheduler defines the interface for a component that schedules a queued
// booking for later settlement.
type Scheduler interface {
	// ScheduleSettlement enqueues a settlement for asynchronous processing
	// after the given delay.
	ScheduleSettlement(ctx context.Context, msg SettlementMessage, delay time.Duration) error
}
