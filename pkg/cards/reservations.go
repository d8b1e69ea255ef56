package cards

import (
	"context"
	"fmt"
	"time"

	"github.com/bankmock/bankmock/pkg/fx"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/transfers"
	"github.com/bankmock/bankmock/pkg/webhooks"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ActionType selects how an open reservation is resolved.
type ActionType string

const (
	// BOOK converts the reservation into a settled booking.
	BOOK ActionType = "BOOK"
)

// CreateReservationParams describes a card spend attempt.
type CreateReservationParams struct {
	PersonID  string
	CardID    string
	Amount    int64
	Currency  string
	Type      models.TransactionType
	Recipient string
	// POSEntryMode defaults to CONTACTLESS when empty.
	POSEntryMode models.POSEntryMode
	// DeclineReason forces a simulated decline: the decline webhook is
	// emitted and no state is mutated.
	DeclineReason *models.CardAuthorizationDeclineReason
}

// CreateReservation validates a card spend attempt and records the resulting
// hold. Validation is a synchronous precondition: on any failure, no state
// has been mutated. For business declines (blocked or inactive card,
// insufficient funds, limit breach) a decline webhook is emitted alongside
// the returned error; pure not-found conditions emit nothing.
//
// Returns the open reservation, or nil when a forced decline was requested.
func (s *Service) CreateReservation(ctx context.Context, params CreateReservationParams) (*models.Reservation, error) {
	if params.POSEntryMode == "" {
		params.POSEntryMode = models.CONTACTLESS
	}

	unlock := s.Locks.Lock(params.PersonID)
	defer unlock()

	person, err := s.Store.GetPerson(ctx, params.PersonID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reservation := s.buildReservation(params, now)

	if params.DeclineReason != nil {
		s.emitDecline(ctx, *params.DeclineReason, reservation)
		return nil, nil
	}

	cardData := person.FindCardData(params.CardID)
	if cardData == nil {
		return nil, ErrCardNotFound
	}

	switch cardData.Card.Status {
	case models.BLOCKED, models.BLOCKED_BY_SOLARIS:
		s.emitDecline(ctx, models.CARD_BLOCKED, reservation)
		return nil, ErrCardBlocked
	case models.INACTIVE:
		s.emitDecline(ctx, models.CARD_INACTIVE, reservation)
		return nil, ErrCardInactive
	case models.ACTIVE:
	default:
		return nil, ErrCardNotActive
	}

	// The funds check uses the raw request amount, not the converted
	// reservation amount; client fixtures depend on this comparison.
	if person.Account.AvailableBalance.Value < params.Amount {
		s.emitDecline(ctx, models.INSUFFICIENT_FUNDS, reservation)
		return nil, ErrInsufficientFunds
	}

	usage := ComputeUsage(person, now)
	usage.Include(reservation)
	if err := s.validateCardLimits(ctx, usage, cardData.CardDetails, reservation); err != nil {
		return nil, err
	}

	if err := person.Account.Reservations.Add(reservation); err != nil {
		return nil, fmt.Errorf("failed to record reservation: %w", err)
	}

	if err := s.Store.SavePerson(ctx, person, storage.SaveOptions{}); err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	s.Notifier.Emit(ctx, webhooks.EventCardAuthorization, reservation)

	return &reservation, nil
}

// UpdateReservation resolves an open reservation.
func (s *Service) UpdateReservation(ctx context.Context, personID, reservationID string, action ActionType) error {
	unlock := s.Locks.Lock(personID)
	defer unlock()

	person, err := s.Store.GetPerson(ctx, personID)
	if err != nil {
		return err
	}

	reservation, ok := person.Account.Reservations.Get(reservationID)
	if !ok {
		return ErrReservationNotFound
	}

	switch action {
	case BOOK:
		return s.bookReservation(ctx, person, reservation)
	default:
		return fmt.Errorf("unsupported reservation action %q", action)
	}
}

// bookReservation converts the reservation into a settled booking, removes it
// from the open set and persists, then announces the resolution.
func (s *Service) bookReservation(ctx context.Context, person *models.Person, reservation models.Reservation) error {
	now := s.now()

	booking := transfers.BookingFromReservation(person, reservation, now)
	person.Transactions = append(person.Transactions, booking)
	person.Account.Reservations.Remove(reservation.ID)

	if err := s.Store.SavePerson(ctx, person, storage.SaveOptions{}); err != nil {
		return fmt.Errorf("failed to persist resolved reservation: %w", err)
	}

	resolved := reservation.Resolved(now)
	s.Notifier.Emit(ctx, webhooks.EventCardAuthorizationResolution, resolved)
	s.Notifier.Emit(ctx, webhooks.EventBookingsChanged, webhooks.BookingsChangedPayload{
		AccountID: person.Account.ID,
	})

	return nil
}

// buildReservation maps the spend attempt to an OPEN reservation held in the
// account currency, expiring one month out.
func (s *Service) buildReservation(params CreateReservationParams, now time.Time) models.Reservation {
	original := params.Amount
	if original < 0 {
		original = -original
	}
	converted := fx.Convert(original, params.Currency)

	traceID := uuid.New().String()
	transactionTime := now
	expiresAt := openapi_types.Date{Time: now.AddDate(0, 1, 0)}

	return models.Reservation{
		ID: uuid.New().String(),
		Amount: models.Amount{
			Value:    converted,
			Unit:     "cents",
			Currency: fx.AccountCurrency,
		},
		ReservationType: models.CARD_AUTHORIZATION,
		Reference:       uuid.New().String(),
		Status:          models.OPEN,
		MetaInfo: &models.TransactionMetaInfo{
			Cards: &models.CardMetaInfo{
				CardID: params.CardID,
				Merchant: models.CardMerchant{
					CountryCode:  "DE",
					CategoryCode: "7392",
					Name:         params.Recipient,
					Town:         "Berlin",
				},
				OriginalAmount: models.OriginalAmount{
					Currency: params.Currency,
					Value:    original,
					FxRate:   fx.RateFloat(params.Currency),
				},
				POSEntryMode:    params.POSEntryMode,
				TraceID:         &traceID,
				TransactionDate: openapi_types.Date{Time: now},
				TransactionTime: &transactionTime,
				TransactionType: params.Type,
			},
		},
		ExpiresAt:   &expiresAt,
		Description: params.Recipient,
	}
}

func (s *Service) emitDecline(ctx context.Context, reason models.CardAuthorizationDeclineReason, reservation models.Reservation) {
	s.Notifier.Emit(ctx, webhooks.EventCardAuthorizationDecline, webhooks.CardDeclinePayload{
		Reason:          reason,
		CardTransaction: reservation,
	})
}
