// Package ledger derives an account's settled and available balances from the
// person record. The balances are never stored stale: the store backends run
// the calculator on every save.
package ledger

import (
	"time"

	"github.com/bankmock/bankmock/pkg/models"
)

// Calculator recomputes the derived balance fields of a person's account.
// The zero value works and skips interest accrual; production wiring injects
// an InterestAccruer.
type Calculator struct {
	Interest InterestAccruer
}

// Recalculate freezes fresh balances into the person's account:
//
//	balance           = Σ settled transactions (valuta date before now)
//	available_balance = account_limit + balance + Σ accepted queued bookings − Σ open reservations
//
// When the settled balance is negative and skipInterest is false, the
// overdraft accruer runs before the balances are written. Calling this twice
// on an unchanged record yields identical balances.
func (c Calculator) Recalculate(person *models.Person, now time.Time, skipInterest bool) {
	account := person.Account
	if account == nil {
		return
	}

	settled := settledTransactionsBalance(person.Transactions, now)
	confirmed := confirmedQueuedBookingsBalance(person.QueuedBookings)
	reserved := reservationsBalance(&account.Reservations)

	var limit int64
	if account.AccountLimit != nil {
		limit = account.AccountLimit.Value
	}

	if settled < 0 && !skipInterest && c.Interest != nil {
		c.Interest.Apply(account, settled)
	}

	account.Balance = models.Amount{Value: settled, Unit: "cents", Currency: "EUR"}
	// Confirmed transfer amounts are negative.
	account.AvailableBalance = models.Amount{Value: limit + settled + confirmed - reserved, Unit: "cents", Currency: "EUR"}
}

func settledTransactionsBalance(transactions []models.Booking, now time.Time) int64 {
	var sum int64
	for i := range transactions {
		if transactions[i].ValutaDate.Time.Before(now) {
			sum += transactions[i].Amount.Value
		}
	}
	return sum
}

func confirmedQueuedBookingsBalance(queued []models.Booking) int64 {
	var sum int64
	for i := range queued {
		if queued[i].Status == models.BookingStatusAccepted {
			sum += queued[i].Amount.Value
		}
	}
	return sum
}

func reservationsBalance(reservations *models.ReservationSet) int64 {
	var sum int64
	for _, r := range reservations.All() {
		sum += r.Amount.Value
	}
	return sum
}
