package cards

import (
	"errors"
	"fmt"

	"github.com/bankmock/bankmock/pkg/models"
)

// ErrCardNotFound is returned when the account has no card with the given ID.
// No decline webhook is emitted for it; an unknown card is a caller error,
// not a business decline.
var ErrCardNotFound = errors.New("card not found")

// ErrCardBlocked is returned when the card is blocked by the holder or the bank.
var ErrCardBlocked = errors.New("card is blocked")

// ErrCardInactive is returned when the card has not been activated.
var ErrCardInactive = errors.New("card is in inactive status")

// ErrCardNotActive is returned for any remaining non-ACTIVE card status.
var ErrCardNotActive = errors.New("card is not in active status")

// ErrInsufficientFunds is returned when the available balance does not cover
// the authorization amount.
var ErrInsufficientFunds = errors.New("insufficient funds to complete this action")

// ErrReservationNotFound is returned when no open reservation matches the given ID.
var ErrReservationNotFound = errors.New("reservation not found")

// LimitExceededError is returned when a card usage limit would be breached.
// Reason carries the decline reason of the first breached check.
type LimitExceededError struct {
	Reason models.CardAuthorizationDeclineReason
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("card limit exceeded: %s", e.Reason)
}
