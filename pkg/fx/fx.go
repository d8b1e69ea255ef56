// Package fx converts card amounts into the account currency using a static
// rate table. The mock does not follow market rates; the table exists so that
// client integration tests can exercise foreign-currency authorizations with
// deterministic results.
package fx

import (
	"github.com/shopspring/decimal"
)

// AccountCurrency is the currency every mock account is denominated in.
const AccountCurrency = "EUR"

// rates maps an original currency to its EUR conversion rate.
var rates = map[string]decimal.Decimal{
	"EUR": decimal.NewFromInt(1),
	"USD": decimal.RequireFromString("0.904"),
	"GBP": decimal.RequireFromString("1.172"),
	"CHF": decimal.RequireFromString("1.043"),
	"PLN": decimal.RequireFromString("0.235"),
	"SEK": decimal.RequireFromString("0.088"),
	"DKK": decimal.RequireFromString("0.134"),
	"NOK": decimal.RequireFromString("0.087"),
}

// Rate returns the conversion rate for the given currency. Unlisted
// currencies convert at par.
func Rate(currency string) decimal.Decimal {
	if rate, ok := rates[currency]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}

// RateFloat returns the rate as a float64 for embedding in card meta info.
func RateFloat(currency string) float64 {
	f, _ := Rate(currency).Float64()
	return f
}

// Convert converts an amount in minor units from the given currency into the
// account currency, rounding to the nearest unit.
func Convert(value int64, currency string) int64 {
	return decimal.NewFromInt(value).Mul(Rate(currency)).Round(0).IntPart()
}
