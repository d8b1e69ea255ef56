package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationSet(t *testing.T) {
	r1 := Reservation{ID: "res-1", Amount: Amount{Value: 100}, Status: OPEN}
	r2 := Reservation{ID: "res-2", Amount: Amount{Value: 200}, Status: OPEN}

	t.Run("Add And Get", func(t *testing.T) {
		var set ReservationSet
		require.NoError(t, set.Add(r1))
		require.NoError(t, set.Add(r2))

		got, ok := set.Get("res-1")
		assert.True(t, ok)
		assert.Equal(t, int64(100), got.Amount.Value)
		assert.Equal(t, 2, set.Len())
	})

	t.Run("Duplicate ID Rejected", func(t *testing.T) {
		var set ReservationSet
		require.NoError(t, set.Add(r1))
		assert.Error(t, set.Add(r1))
		assert.Equal(t, 1, set.Len())
	})

	t.Run("Remove Preserves Order Of The Rest", func(t *testing.T) {
		set := NewReservationSet(r1, r2, Reservation{ID: "res-3"})

		removed, ok := set.Remove("res-2")
		assert.True(t, ok)
		assert.Equal(t, "res-2", removed.ID)

		all := set.All()
		require.Len(t, all, 2)
		assert.Equal(t, "res-1", all[0].ID)
		assert.Equal(t, "res-3", all[1].ID)

		_, ok = set.Get("res-2")
		assert.False(t, ok)
	})

	t.Run("Marshals As Array", func(t *testing.T) {
		set := NewReservationSet(r1, r2)

		data, err := json.Marshal(set)
		require.NoError(t, err)

		var raw []map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Len(t, raw, 2)
		assert.Equal(t, "res-1", raw[0]["id"])
	})

	t.Run("Empty Set Marshals As Empty Array", func(t *testing.T) {
		var set ReservationSet
		data, err := json.Marshal(set)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("Null Unmarshals To Empty Set", func(t *testing.T) {
		var set ReservationSet
		require.NoError(t, json.Unmarshal([]byte("null"), &set))
		assert.Equal(t, 0, set.Len())
	})

	t.Run("Duplicate IDs In Input Keep The First", func(t *testing.T) {
		var set ReservationSet
		input := `[{"id":"res-1","amount":{"value":100}},{"id":"res-1","amount":{"value":999}}]`
		require.NoError(t, json.Unmarshal([]byte(input), &set))

		require.Equal(t, 1, set.Len())
		got, _ := set.Get("res-1")
		assert.Equal(t, int64(100), got.Amount.Value)
	})
}

func TestTransactionMetaInfo(t *testing.T) {
	t.Run("Decodes String Encoded Object", func(t *testing.T) {
		wire := `"{\"cards\":{\"card_id\":\"card-1\",\"merchant\":{\"country_code\":\"DE\",\"category_code\":\"7392\",\"name\":\"Purchase\",\"town\":\"Berlin\"},\"original_amount\":{\"currency\":\"EUR\",\"value\":-5000,\"fx_rate\":1},\"pos_entry_mode\":\"CONTACTLESS\",\"trace_id\":null,\"transaction_date\":\"2023-03-30\",\"transaction_time\":null,\"transaction_type\":\"PURCHASE\"}}"`

		var meta TransactionMetaInfo
		require.NoError(t, json.Unmarshal([]byte(wire), &meta))

		card := meta.CardMeta()
		require.NotNil(t, card)
		assert.Equal(t, "card-1", card.CardID)
		assert.Equal(t, CONTACTLESS, card.POSEntryMode)
		assert.Equal(t, int64(-5000), card.OriginalAmount.Value)
		assert.Equal(t, 2023, card.TransactionDate.Time.Year())
	})

	t.Run("Decodes Plain Object", func(t *testing.T) {
		wire := `{"cards":{"card_id":"card-2","merchant":{},"original_amount":{},"pos_entry_mode":"CARD_NOT_PRESENT","trace_id":null,"transaction_date":"2023-01-01","transaction_time":null,"transaction_type":"PURCHASE"}}`

		var meta TransactionMetaInfo
		require.NoError(t, json.Unmarshal([]byte(wire), &meta))
		require.NotNil(t, meta.CardMeta())
		assert.Equal(t, "card-2", meta.CardMeta().CardID)
	})

	t.Run("Null Leaves Meta Empty", func(t *testing.T) {
		var meta TransactionMetaInfo
		require.NoError(t, json.Unmarshal([]byte("null"), &meta))
		assert.Nil(t, meta.CardMeta())
	})

	t.Run("Encodes As String", func(t *testing.T) {
		meta := TransactionMetaInfo{Cards: &CardMetaInfo{CardID: "card-3"}}

		data, err := json.Marshal(meta)
		require.NoError(t, err)

		var inner string
		require.NoError(t, json.Unmarshal(data, &inner))
		assert.Contains(t, inner, `"card_id":"card-3"`)
	})

	t.Run("Nil Accessor On Nil Meta", func(t *testing.T) {
		var meta *TransactionMetaInfo
		assert.Nil(t, meta.CardMeta())
	})
}

func TestPersonNormalize(t *testing.T) {
	person := &Person{ID: "p1"}
	person.Normalize()

	assert.NotNil(t, person.Transactions)
	assert.NotNil(t, person.QueuedBookings)
	assert.NotNil(t, person.FraudCases)
	assert.NotNil(t, person.TimedOrders)
}

func TestFindCardData(t *testing.T) {
	person := &Person{
		ID: "p1",
		Account: &Account{
			Cards: []CardData{
				{Card: Card{ID: "card-a", Status: ACTIVE}},
				{Card: Card{ID: "card-b", Status: BLOCKED}},
			},
		},
	}

	t.Run("Found", func(t *testing.T) {
		card := person.FindCardData("card-b")
		require.NotNil(t, card)
		assert.Equal(t, BLOCKED, card.Card.Status)
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Nil(t, person.FindCardData("card-z"))
	})

	t.Run("No Account", func(t *testing.T) {
		assert.Nil(t, (&Person{}).FindCardData("card-a"))
	})
}

func TestReservationResolved(t *testing.T) {
	at := time.Date(2023, time.April, 1, 10, 0, 0, 0, time.UTC)
	open := Reservation{ID: "res-1", Status: OPEN}

	resolved := open.Resolved(at)

	assert.Equal(t, RESOLVED, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, at, *resolved.ResolvedAt)
	// Original is untouched.
	assert.Equal(t, OPEN, open.Status)
	assert.Nil(t, open.ResolvedAt)
}
