package transfers

import (
	"context"
	"fmt"
	"time"

	"github.com/bankmock/bankmock/pkg/fx"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/scheduler"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/webhooks"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateTransferParams describes an outgoing SEPA credit transfer.
type CreateTransferParams struct {
	PersonID string
	// Amount in cents, positive; the booking is recorded negated.
	Amount        int64
	Description   string
	EndToEndID    string
	RecipientName string
	RecipientIBAN string
	RecipientBIC  string
}

// CreateTransfer records an outgoing transfer as an accepted queued booking
// and schedules its settlement. The available balance drops immediately; the
// settled balance only moves once the booking settles. A scheduling failure
// is logged but does not fail the transfer, the reconciliation job picks the
// booking up later.
func (s *Service) CreateTransfer(ctx context.Context, params CreateTransferParams) (*models.Booking, error) {
	unlock := s.Locks.Lock(params.PersonID)
	defer unlock()

	person, err := s.Store.GetPerson(ctx, params.PersonID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	amount := params.Amount
	if amount > 0 {
		amount = -amount
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		BookingType: models.SEPA_CREDIT_TRANSFER,
		Amount: models.Amount{
			Value:    amount,
			Unit:     "cents",
			Currency: fx.AccountCurrency,
		},
		Description:   params.Description,
		BookingDate:   openapi_types.Date{Time: now},
		ValutaDate:    openapi_types.Date{Time: now},
		RecipientBIC:  params.RecipientBIC,
		RecipientIBAN: params.RecipientIBAN,
		RecipientName: params.RecipientName,
		SenderBIC:     person.Account.BIC,
		SenderIBAN:    person.Account.IBAN,
		SenderName:    person.Account.SenderName,
		EndToEndID:    params.EndToEndID,
		Reference:     uuid.New().String(),
		Status:        models.BookingStatusAccepted,
	}

	person.QueuedBookings = append(person.QueuedBookings, booking)

	if err := s.Store.SavePerson(ctx, person, storage.SaveOptions{}); err != nil {
		return nil, fmt.Errorf("failed to persist transfer: %w", err)
	}

	msg := scheduler.SettlementMessage{PersonID: person.ID, BookingID: booking.ID}
	if err := s.Scheduler.ScheduleSettlement(ctx, msg, SettlementDelay); err != nil {
		s.logger().Error("failed to schedule settlement",
			"person_id", person.ID, "booking_id", booking.ID, "error", err)
	}

	return &booking, nil
}

// SettleQueuedBooking moves one queued booking into the settled transaction
// history. Settling a booking that is no longer queued returns
// ErrBookingNotFound, which makes redelivered settlement messages harmless.
func (s *Service) SettleQueuedBooking(ctx context.Context, personID, bookingID string) error {
	unlock := s.Locks.Lock(personID)
	defer unlock()

	person, err := s.Store.GetPerson(ctx, personID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range person.QueuedBookings {
		if person.QueuedBookings[i].ID == bookingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBookingNotFound
	}

	booking := person.QueuedBookings[idx]
	person.QueuedBookings = append(person.QueuedBookings[:idx], person.QueuedBookings[idx+1:]...)
	person.Transactions = append(person.Transactions, booking)

	if err := s.Store.SavePerson(ctx, person, storage.SaveOptions{}); err != nil {
		return fmt.Errorf("failed to persist settlement: %w", err)
	}

	s.Notifier.Emit(ctx, webhooks.EventBookingsChanged, webhooks.BookingsChangedPayload{
		AccountID: person.Account.ID,
	})

	return nil
}

// ProcessQueuedBookings settles every queued booking of one person
// immediately, regardless of schedule. Backoffice trigger for client tests
// that cannot wait out the settlement delay.
func (s *Service) ProcessQueuedBookings(ctx context.Context, personID string) (int, error) {
	person, err := s.Store.GetPerson(ctx, personID)
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(person.QueuedBookings))
	for _, booking := range person.QueuedBookings {
		ids = append(ids, booking.ID)
	}

	for _, id := range ids {
		if err := s.SettleQueuedBooking(ctx, personID, id); err != nil {
			return 0, fmt.Errorf("failed to settle queued booking %s: %w", id, err)
		}
	}
	return len(ids), nil
}

// ListDueSettlements scans all persons for queued bookings left over from an
// earlier day and returns one settlement message per booking. Booking dates
// carry no time of day, so same-day bookings are never considered overdue;
// their scheduled settlement is still in flight. Used by the reconciliation
// job to catch bookings whose scheduled settlement was lost.
func (s *Service) ListDueSettlements(ctx context.Context) ([]scheduler.SettlementMessage, error) {
	persons, err := s.Store.ListPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var due []scheduler.SettlementMessage
	for i := range persons {
		for _, booking := range persons[i].QueuedBookings {
			if !booking.BookingDate.Time.Before(startOfDay) {
				continue
			}
			due = append(due, scheduler.SettlementMessage{
				PersonID:  persons[i].ID,
				BookingID: booking.ID,
			})
		}
	}
	return due, nil
}

// RescheduleDueSettlements re-enqueues every due queued booking for immediate
// settlement.
func (s *Service) RescheduleDueSettlements(ctx context.Context) (int, error) {
	due, err := s.ListDueSettlements(ctx)
	if err != nil {
		return 0, err
	}
	for _, msg := range due {
		if err := s.Scheduler.ScheduleSettlement(ctx, msg, 0); err != nil {
			return 0, fmt.Errorf("failed to reschedule settlement for booking %s: %w", msg.BookingID, err)
		}
	}
	return len(due), nil
}

// BookingFromReservation materializes the settled booking that resolves a
// card authorization: the held amount negated, the card meta carried over.
// The booking id is derived from the reservation so resolving twice cannot
// mint two distinct bookings.
func BookingFromReservation(person *models.Person, reservation models.Reservation, now time.Time) models.Booking {
	amount := reservation.Amount.Value
	if amount > 0 {
		amount = -amount
	}

	booking := models.Booking{
		ID:          reservation.ID,
		BookingType: models.CARD_TRANSACTION,
		Amount: models.Amount{
			Value:    amount,
			Unit:     reservation.Amount.Unit,
			Currency: reservation.Amount.Currency,
		},
		Description:   reservation.Description,
		BookingDate:   openapi_types.Date{Time: now},
		ValutaDate:    openapi_types.Date{Time: now},
		Reference:     reservation.Reference,
		TransactionID: reservation.ID,
		MetaInfo:      reservation.MetaInfo,
	}
	if person.Account != nil {
		booking.SenderBIC = person.Account.BIC
		booking.SenderIBAN = person.Account.IBAN
		booking.SenderName = person.Account.SenderName
	}
	if card := reservation.MetaInfo.CardMeta(); card != nil {
		booking.RecipientName = card.Merchant.Name
	}
	return booking
}
