package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/bankmock/bankmock/pkg/ledger"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/seed"
	"github.com/bankmock/bankmock/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	ctx := context.Background()

	store := memory.New(ledger.Calculator{}, "test")
	store.Now = func() time.Time { return time.Date(2023, time.April, 15, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, seed.Apply(ctx, store))

	t.Run("Business Account", func(t *testing.T) {
		person, err := store.GetPerson(ctx, "mockpersonkontistgmbh")
		require.NoError(t, err)
		require.NotNil(t, person.Account)

		assert.Equal(t, "DE58110101002263909949", person.Account.IBAN)
		assert.Equal(t, int64(25500), person.Account.Balance.Value)
		assert.Equal(t, int64(20500), person.Account.AvailableBalance.Value)
		assert.Len(t, person.QueuedBookings, 1)
		require.NotNil(t, person.BillingAccount)
	})

	t.Run("Card Holder", func(t *testing.T) {
		person, err := store.GetPerson(ctx, "mock2ae44519fa2cc8e847e21221aa55b718")
		require.NoError(t, err)
		require.NotNil(t, person.Account)

		assert.Equal(t, int64(-35700), person.Account.Balance.Value)
		assert.Equal(t, int64(-35700), person.Account.AvailableBalance.Value)
		assert.Equal(t, int64(20), person.Account.OverdraftInterest)

		card := person.FindCardData("a3c40d4aa59943ccb9bc0443d827e8ca")
		require.NotNil(t, card)
		assert.Equal(t, models.ACTIVE, card.Card.Status)
	})

	t.Run("Fresh Copies", func(t *testing.T) {
		first := seed.Persons()
		first[0].FirstName = "mutated"
		assert.Equal(t, "Kontist", seed.Persons()[0].FirstName)
	})
}
