package webhooks

import "github.com/bankmock/bankmock/pkg/models"

// EventType defines the webhook events emitted by the mock core.
type EventType string

const (
	// EventCardAuthorization announces an approved card authorization; the
	// payload is the open reservation.
	EventCardAuthorization EventType = "CARD_AUTHORIZATION"
	// EventCardAuthorizationDecline announces a declined authorization.
	EventCardAuthorizationDecline EventType = "CARD_AUTHORIZATION_DECLINE"
	// EventCardAuthorizationResolution announces a resolved authorization;
	// the payload is the reservation with status RESOLVED.
	EventCardAuthorizationResolution EventType = "CARD_AUTHORIZATION_RESOLUTION"
	// EventBookingsChanged tells the subscriber to re-fetch an account's bookings.
	EventBookingsChanged EventType = "BOOKINGS_CHANGED"
)

// Event is the envelope delivered to the subscriber.
type Event struct {
	ID        string      `json:"id"`
	EventType EventType   `json:"event_type"`
	Payload   interface{} `json:"payload"`
}

// CardDeclinePayload is the payload of a CARD_AUTHORIZATION_DECLINE event.
type CardDeclinePayload struct {
	Reason          models.CardAuthorizationDeclineReason `json:"reason"`
	CardTransaction models.Reservation                    `json:"card_transaction"`
}

// BookingsChangedPayload is the payload of a BOOKINGS_CHANGED event.
type BookingsChangedPayload struct {
	AccountID string `json:"account_id"`
}
