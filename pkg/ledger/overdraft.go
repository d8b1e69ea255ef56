package ledger

import (
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/shopspring/decimal"
)

// InterestAccruer charges interest on an overdrawn account. It is invoked by
// the Calculator with the (negative) settled balance and mutates the account
// in place.
type InterestAccruer interface {
	Apply(account *models.Account, negativeBalance int64)
}

// DefaultAnnualOverdraftRate is the mock's flat overdraft rate.
const DefaultAnnualOverdraftRate = "0.11"

// DailyAccruer accrues one day of pro-rata annual interest per save on the
// overdrawn amount, accumulating into the account's overdraftInterest field.
type DailyAccruer struct {
	AnnualRate decimal.Decimal
}

// NewDailyAccruer returns an accruer at the default rate.
func NewDailyAccruer() *DailyAccruer {
	return &DailyAccruer{AnnualRate: decimal.RequireFromString(DefaultAnnualOverdraftRate)}
}

var _ InterestAccruer = (*DailyAccruer)(nil)

// Apply adds one day's interest on the overdrawn amount, in cents.
func (a *DailyAccruer) Apply(account *models.Account, negativeBalance int64) {
	if negativeBalance >= 0 {
		return
	}
	overdrawn := decimal.NewFromInt(-negativeBalance)
	daily := overdrawn.Mul(a.AnnualRate).Div(decimal.NewFromInt(365)).Round(0)
	account.OverdraftInterest += daily.IntPart()
}
