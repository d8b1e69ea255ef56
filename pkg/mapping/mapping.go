// Package mapping translates API request types into domain parameters.
package mapping

import (
	"github.com/bankmock/bankmock/pkg/api"
	"github.com/bankmock/bankmock/pkg/cards"
	"github.com/bankmock/bankmock/pkg/fx"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/transfers"
)

// ToDomainSpend maps a spend request to reservation engine parameters.
func ToDomainSpend(personID string, req *api.SpendRequest) cards.CreateReservationParams {
	params := cards.CreateReservationParams{
		PersonID:     personID,
		CardID:       req.CardId,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Type:         models.TransactionType(req.Type),
		Recipient:    req.Recipient,
		POSEntryMode: models.POSEntryMode(req.PosEntryMode),
	}
	if params.Currency == "" {
		params.Currency = fx.AccountCurrency
	}
	if params.Type == "" {
		params.Type = models.PURCHASE
	}
	if req.DeclineReason != nil {
		reason := models.CardAuthorizationDeclineReason(*req.DeclineReason)
		params.DeclineReason = &reason
	}
	return params
}

// ToDomainTransfer maps a transfer request to transfer service parameters.
func ToDomainTransfer(personID string, req *api.CreateTransferRequest) transfers.CreateTransferParams {
	return transfers.CreateTransferParams{
		PersonID:      personID,
		Amount:        req.Amount,
		Description:   req.Description,
		EndToEndID:    req.EndToEndId,
		RecipientName: req.RecipientName,
		RecipientIBAN: req.RecipientIban,
		RecipientBIC:  req.RecipientBic,
	}
}

// ToDomainWebhook maps a webhook registration to the stored subscription.
func ToDomainWebhook(req *api.WebhookRegistration) models.WebhookSubscription {
	return models.WebhookSubscription{
		EventType: req.EventType,
		URL:       req.Url,
	}
}
