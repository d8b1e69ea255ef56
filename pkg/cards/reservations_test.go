package cards

import (
	"context"
	"testing"
	"time"

	"github.com/bankmock/bankmock/pkg/ledger"
	"github.com/bankmock/bankmock/pkg/locks"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/storage/memory"
	"github.com/bankmock/bankmock/pkg/webhooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var testNow = time.Date(2023, time.April, 15, 12, 0, 0, 0, time.UTC)

// newTestEngine wires the engine against the in-memory store with a frozen
// clock and a recording notifier.
func newTestEngine(t *testing.T) (*Service, *memory.Store, *webhooks.Recorder) {
	t.Helper()

	store := memory.New(ledger.Calculator{}, "test")
	store.Now = func() time.Time { return testNow }

	recorder := &webhooks.Recorder{}
	engine := NewService(store, recorder, locks.New())
	engine.Now = func() time.Time { return testNow }

	return engine, store, recorder
}

// seedCardPerson saves a person with the given available balance and one card.
func seedCardPerson(t *testing.T, store *memory.Store, balance int64, status models.CardStatus) *models.Person {
	t.Helper()

	person := &models.Person{
		ID: "person-1",
		Account: &models.Account{
			ID:       "account-1",
			PersonID: "person-1",
			Cards: []models.CardData{
				{
					Card: models.Card{ID: "card-1", Status: status},
					CardDetails: models.CardDetails{
						CardPresentLimits: &models.CardLimits{
							Daily:   models.CardLimit{MaxAmountCents: 500000, MaxTransactions: 10},
							Monthly: models.CardLimit{MaxAmountCents: 1000000, MaxTransactions: 100},
						},
						CardNotPresentLimits: &models.CardLimits{
							Daily:   models.CardLimit{MaxAmountCents: 500000, MaxTransactions: 10},
							Monthly: models.CardLimit{MaxAmountCents: 1000000, MaxTransactions: 100},
						},
					},
				},
			},
		},
		Transactions: []models.Booking{
			{
				ID:         "funding",
				Amount:     models.Amount{Value: balance, Unit: "cents", Currency: "EUR"},
				ValutaDate: openapi_types.Date{Time: testNow.AddDate(0, -1, 0)},
			},
		},
	}
	require.NoError(t, store.SavePerson(context.Background(), person, storage.SaveOptions{}))
	return person
}

func spendParams(amount int64) CreateReservationParams {
	return CreateReservationParams{
		PersonID:  "person-1",
		CardID:    "card-1",
		Amount:    amount,
		Currency:  "EUR",
		Type:      models.PURCHASE,
		Recipient: "Coffee Shop",
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Spend Holds The Amount", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.ACTIVE)

		reservation, err := engine.CreateReservation(ctx, spendParams(3000))
		require.NoError(t, err)
		require.NotNil(t, reservation)

		assert.Equal(t, models.OPEN, reservation.Status)
		assert.Equal(t, int64(3000), reservation.Amount.Value)
		assert.Equal(t, "EUR", reservation.Amount.Currency)
		assert.Equal(t, models.CARD_AUTHORIZATION, reservation.ReservationType)
		require.NotNil(t, reservation.MetaInfo.CardMeta())
		assert.Equal(t, models.CONTACTLESS, reservation.MetaInfo.CardMeta().POSEntryMode)

		persisted, err := store.GetPerson(ctx, "person-1")
		require.NoError(t, err)
		assert.Equal(t, 1, persisted.Account.Reservations.Len())
		assert.Equal(t, int64(7000), persisted.Account.AvailableBalance.Value)

		events := recorder.ByType(webhooks.EventCardAuthorization)
		require.Len(t, events, 1)
	})

	t.Run("Blocked Card Declines", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.BLOCKED)

		_, err := engine.CreateReservation(ctx, spendParams(3000))
		assert.ErrorIs(t, err, ErrCardBlocked)

		persisted, _ := store.GetPerson(ctx, "person-1")
		assert.Equal(t, 0, persisted.Account.Reservations.Len())
		assert.Equal(t, int64(10000), persisted.Account.AvailableBalance.Value)

		declines := recorder.ByType(webhooks.EventCardAuthorizationDecline)
		require.Len(t, declines, 1)
		payload := declines[0].Payload.(webhooks.CardDeclinePayload)
		assert.Equal(t, models.CARD_BLOCKED, payload.Reason)
	})

	t.Run("Bank Blocked Card Declines The Same Way", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.BLOCKED_BY_SOLARIS)

		_, err := engine.CreateReservation(ctx, spendParams(3000))
		assert.ErrorIs(t, err, ErrCardBlocked)
		require.Len(t, recorder.ByType(webhooks.EventCardAuthorizationDecline), 1)
	})

	t.Run("Inactive Card Declines", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.INACTIVE)

		_, err := engine.CreateReservation(ctx, spendParams(3000))
		assert.ErrorIs(t, err, ErrCardInactive)

		declines := recorder.ByType(webhooks.EventCardAuthorizationDecline)
		require.Len(t, declines, 1)
		assert.Equal(t, models.CARD_INACTIVE, declines[0].Payload.(webhooks.CardDeclinePayload).Reason)
	})

	t.Run("Processing Card Fails Without Webhook", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.PROCESSING)

		_, err := engine.CreateReservation(ctx, spendParams(3000))
		assert.ErrorIs(t, err, ErrCardNotActive)
		assert.Empty(t, recorder.Events())
	})

	t.Run("Unknown Card Fails Without Webhook", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.ACTIVE)

		params := spendParams(3000)
		params.CardID = "card-404"
		_, err := engine.CreateReservation(ctx, params)
		assert.ErrorIs(t, err, ErrCardNotFound)
		assert.Empty(t, recorder.Events())
	})

	t.Run("Unknown Person Fails", func(t *testing.T) {
		engine, _, _ := newTestEngine(t)

		_, err := engine.CreateReservation(ctx, spendParams(3000))
		assert.ErrorIs(t, err, storage.ErrPersonNotFound)
	})

	t.Run("Insufficient Funds Declines", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 2000, models.ACTIVE)

		_, err := engine.CreateReservation(ctx, spendParams(3000))
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		declines := recorder.ByType(webhooks.EventCardAuthorizationDecline)
		require.Len(t, declines, 1)
		assert.Equal(t, models.INSUFFICIENT_FUNDS, declines[0].Payload.(webhooks.CardDeclinePayload).Reason)
	})

	t.Run("Funds Check Uses The Raw Request Amount", func(t *testing.T) {
		engine, store, _ := newTestEngine(t)
		seedCardPerson(t, store, 9500, models.ACTIVE)

		// 10000 USD converts to 9040 EUR cents, which the balance covers,
		// but the comparison runs on the unconverted 10000.
		params := spendParams(10000)
		params.Currency = "USD"
		_, err := engine.CreateReservation(ctx, params)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("Foreign Currency Is Converted Into The Hold", func(t *testing.T) {
		engine, store, _ := newTestEngine(t)
		seedCardPerson(t, store, 20000, models.ACTIVE)

		params := spendParams(10000)
		params.Currency = "USD"
		reservation, err := engine.CreateReservation(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, int64(9040), reservation.Amount.Value)
		assert.Equal(t, "EUR", reservation.Amount.Currency)
		require.NotNil(t, reservation.MetaInfo.CardMeta())
		assert.Equal(t, "USD", reservation.MetaInfo.CardMeta().OriginalAmount.Currency)
		assert.Equal(t, int64(10000), reservation.MetaInfo.CardMeta().OriginalAmount.Value)
	})

	t.Run("Forced Decline Emits And Mutates Nothing", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.ACTIVE)

		reason := models.FRAUD_SUSPECTED
		params := spendParams(3000)
		params.DeclineReason = &reason

		reservation, err := engine.CreateReservation(ctx, params)
		require.NoError(t, err)
		assert.Nil(t, reservation)

		persisted, _ := store.GetPerson(ctx, "person-1")
		assert.Equal(t, 0, persisted.Account.Reservations.Len())

		declines := recorder.ByType(webhooks.EventCardAuthorizationDecline)
		require.Len(t, declines, 1)
		assert.Equal(t, models.FRAUD_SUSPECTED, declines[0].Payload.(webhooks.CardDeclinePayload).Reason)
	})

	t.Run("Reservation Expires One Month Out", func(t *testing.T) {
		engine, store, _ := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.ACTIVE)

		reservation, err := engine.CreateReservation(ctx, spendParams(3000))
		require.NoError(t, err)
		require.NotNil(t, reservation.ExpiresAt)
		assert.Equal(t, testNow.AddDate(0, 1, 0).Format("2006-01-02"), reservation.ExpiresAt.Time.Format("2006-01-02"))
	})
}

func TestUpdateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("Booking Resolves The Reservation", func(t *testing.T) {
		engine, store, recorder := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.ACTIVE)

		reservation, err := engine.CreateReservation(ctx, spendParams(5000))
		require.NoError(t, err)

		require.NoError(t, engine.UpdateReservation(ctx, "person-1", reservation.ID, BOOK))

		persisted, err := store.GetPerson(ctx, "person-1")
		require.NoError(t, err)
		assert.Equal(t, 0, persisted.Account.Reservations.Len())

		var booking *models.Booking
		for i := range persisted.Transactions {
			if persisted.Transactions[i].ID == reservation.ID {
				booking = &persisted.Transactions[i]
			}
		}
		require.NotNil(t, booking)
		assert.Equal(t, int64(-5000), booking.Amount.Value)
		assert.Equal(t, models.CARD_TRANSACTION, booking.BookingType)

		// The booking settles once its valuta date has passed, dropping the
		// settled balance by the held amount.
		store.Now = func() time.Time { return testNow.AddDate(0, 0, 1) }
		require.NoError(t, store.SavePerson(ctx, persisted, storage.SaveOptions{}))
		assert.Equal(t, int64(5000), persisted.Account.Balance.Value)
		assert.Equal(t, int64(5000), persisted.Account.AvailableBalance.Value)

		resolutions := recorder.ByType(webhooks.EventCardAuthorizationResolution)
		require.Len(t, resolutions, 1)
		resolved := resolutions[0].Payload.(models.Reservation)
		assert.Equal(t, models.RESOLVED, resolved.Status)
		require.Len(t, recorder.ByType(webhooks.EventBookingsChanged), 1)
	})

	t.Run("Unknown Reservation", func(t *testing.T) {
		engine, store, _ := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.ACTIVE)

		err := engine.UpdateReservation(ctx, "person-1", "res-404", BOOK)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("Unsupported Action", func(t *testing.T) {
		engine, store, _ := newTestEngine(t)
		seedCardPerson(t, store, 10000, models.ACTIVE)

		reservation, err := engine.CreateReservation(ctx, spendParams(1000))
		require.NoError(t, err)

		err = engine.UpdateReservation(ctx, "person-1", reservation.ID, ActionType("EXPIRE"))
		assert.Error(t, err)
	})
}
