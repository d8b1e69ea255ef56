package cards

import (
	"context"

	"github.com/bankmock/bankmock/pkg/models"
)

// limitCheck pairs one usage window with the limit field that caps it.
type limitCheck struct {
	usage  WindowUsage
	limit  *models.CardLimit
	amount models.CardAuthorizationDeclineReason
	count  models.CardAuthorizationDeclineReason
}

// validateCardLimits checks the usage that an authorization would produce
// against the card's configured limits. Checks run in a fixed order: daily
// windows before monthly, card-present before card-not-present, amount before
// transaction count; the first breach wins. A usage exactly at a limit
// passes; only a strictly greater usage emits a decline webhook and returns a
// LimitExceededError. Unconfigured limit groups are skipped.
func (s *Service) validateCardLimits(ctx context.Context, usage *CardUsage, details models.CardDetails, reservation models.Reservation) error {
	checks := []limitCheck{
		{
			usage:  usage.CardPresent.Daily,
			limit:  dailyLimit(details.CardPresentLimits),
			amount: models.CARD_PRESENT_AMOUNT_LIMIT_REACHED_DAILY,
			count:  models.CARD_PRESENT_USE_LIMIT_REACHED_DAILY,
		},
		{
			usage:  usage.CardNotPresent.Daily,
			limit:  dailyLimit(details.CardNotPresentLimits),
			amount: models.CARD_NOT_PRESENT_AMOUNT_LIMIT_REACHED_DAILY,
			count:  models.CARD_NOT_PRESENT_USE_LIMIT_REACHED_DAILY,
		},
		{
			usage:  usage.CardPresent.Monthly,
			limit:  monthlyLimit(details.CardPresentLimits),
			amount: models.CARD_PRESENT_AMOUNT_LIMIT_REACHED_MONTHLY,
			count:  models.CARD_PRESENT_USE_LIMIT_REACHED_MONTHLY,
		},
		{
			usage:  usage.CardNotPresent.Monthly,
			limit:  monthlyLimit(details.CardNotPresentLimits),
			amount: models.CARD_NOT_PRESENT_AMOUNT_LIMIT_REACHED_MONTHLY,
			count:  models.CARD_NOT_PRESENT_USE_LIMIT_REACHED_MONTHLY,
		},
	}

	for _, check := range checks {
		if check.limit == nil {
			continue
		}
		if check.usage.Amount > check.limit.MaxAmountCents {
			s.emitDecline(ctx, check.amount, reservation)
			return &LimitExceededError{Reason: check.amount}
		}
		if check.usage.Transactions > check.limit.MaxTransactions {
			s.emitDecline(ctx, check.count, reservation)
			return &LimitExceededError{Reason: check.count}
		}
	}

	return nil
}

func dailyLimit(l *models.CardLimits) *models.CardLimit {
	if l == nil {
		return nil
	}
	return &l.Daily
}

func monthlyLimit(l *models.CardLimits) *models.CardLimit {
	if l == nil {
		return nil
	}
	return &l.Monthly
}
