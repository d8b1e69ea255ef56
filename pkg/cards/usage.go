package cards

import (
	"time"

	"github.com/bankmock/bankmock/pkg/models"
)

// WindowUsage is the spend accumulated inside one time window.
type WindowUsage struct {
	Transactions int64
	Amount       int64
}

func (w *WindowUsage) add(amount int64) {
	w.Transactions++
	w.Amount += amount
}

// PresenceUsage holds the daily and monthly windows of one presence axis.
type PresenceUsage struct {
	Daily   WindowUsage
	Monthly WindowUsage
}

// CardUsage is a card holder's spend bucketed by presence axis and window,
// covering open card reservations and settled card transactions.
type CardUsage struct {
	CardPresent    PresenceUsage
	CardNotPresent PresenceUsage

	dayStart   time.Time
	dayEnd     time.Time
	monthStart time.Time
	monthEnd   time.Time
}

// ComputeUsage buckets the person's card activity relative to now. The daily
// window is the calendar day of now, the monthly window its calendar month;
// both bounds are inclusive. Entries are dated by the card transaction date
// in their meta info, so non-card entries never count.
func ComputeUsage(person *models.Person, now time.Time) *CardUsage {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	usage := &CardUsage{
		dayStart:   dayStart,
		dayEnd:     dayStart.AddDate(0, 0, 1).Add(-time.Millisecond),
		monthStart: monthStart,
		monthEnd:   monthStart.AddDate(0, 1, 0).Add(-time.Millisecond),
	}

	for _, r := range person.Account.Reservations.All() {
		usage.Include(r)
	}
	for i := range person.Transactions {
		t := &person.Transactions[i]
		usage.record(t.MetaInfo, t.Amount.Value)
	}

	return usage
}

// Include counts a reservation that is not yet part of the person's state,
// letting a candidate authorization be validated against the usage it would
// produce.
func (u *CardUsage) Include(r models.Reservation) {
	u.record(r.MetaInfo, r.Amount.Value)
}

func (u *CardUsage) record(meta *models.TransactionMetaInfo, amount int64) {
	card := meta.CardMeta()
	if card == nil {
		return
	}
	if amount < 0 {
		amount = -amount
	}

	presence := &u.CardPresent
	if card.POSEntryMode == models.CARD_NOT_PRESENT {
		presence = &u.CardNotPresent
	}

	at := card.TransactionDate.Time
	if withinWindow(at, u.monthStart, u.monthEnd) {
		presence.Monthly.add(amount)
	}
	if withinWindow(at, u.dayStart, u.dayEnd) {
		presence.Daily.add(amount)
	}
}

func withinWindow(at, start, end time.Time) bool {
	return !at.Before(start) && !at.After(end)
}
