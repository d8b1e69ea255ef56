package storage

import (
	"context"

	"github.com/bankmock/bankmock/pkg/models"
)

// WebhookStore defines the interface for managing webhook subscriptions.
// One subscription is kept per event type; registering again replaces it.
type WebhookStore interface {
	// SaveWebhook registers (or replaces) the subscription for an event type.
	SaveWebhook(ctx context.Context, sub models.WebhookSubscription) error

	// GetWebhookByType retrieves the subscription for an event type.
	GetWebhookByType(ctx context.Context, eventType string) (*models.WebhookSubscription, error)

	// ListWebhooks retrieves all registered subscriptions.
	ListWebhooks(ctx context.Context) ([]models.WebhookSubscription, error)

	// DeleteWebhook removes the subscription for an event type.
	DeleteWebhook(ctx context.Context, eventType string) error
}
