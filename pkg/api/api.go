// Package api defines the wire request types of the mock bank's HTTP
// surface. Responses are the domain records themselves; their JSON tags are
// the wire format.
package api

// SpendRequest simulates a card authorization against a person's card.
type SpendRequest struct {
	CardId       string `json:"card_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency,omitempty"`
	Type         string `json:"type,omitempty"`
	Recipient    string `json:"recipient,omitempty"`
	PosEntryMode string `json:"pos_entry_mode,omitempty"`
	// DeclineReason forces the authorization to be declined with the given
	// reason, for exercising decline handling in client tests.
	DeclineReason *string `json:"decline_reason,omitempty"`
}

// ResolveReservationRequest resolves an open card reservation.
type ResolveReservationRequest struct {
	Action string `json:"action"`
}

// CreateTransferRequest creates an outgoing SEPA credit transfer.
type CreateTransferRequest struct {
	Amount        int64  `json:"amount"`
	Description   string `json:"description,omitempty"`
	EndToEndId    string `json:"end_to_end_id,omitempty"`
	RecipientName string `json:"recipient_name"`
	RecipientIban string `json:"recipient_iban"`
	RecipientBic  string `json:"recipient_bic,omitempty"`
}

// WebhookRegistration subscribes a URL to one event type.
type WebhookRegistration struct {
	EventType string `json:"event_type"`
	Url       string `json:"url"`
}
