package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
)

// SaveWebhook registers (or replaces) the subscription for an event type.
func (s *Store) SaveWebhook(ctx context.Context, sub models.WebhookSubscription) error {
	document, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook subscription: %w", err)
	}

	return s.putDocument(ctx, s.webhookKey(sub.EventType), string(document))
}

// GetWebhookByType retrieves the subscription for an event type.
func (s *Store) GetWebhookByType(ctx context.Context, eventType string) (*models.WebhookSubscription, error) {
	document, ok, err := s.getDocument(ctx, s.webhookKey(eventType))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, storage.ErrWebhookNotFound
	}

	var sub models.WebhookSubscription
	if err := json.Unmarshal([]byte(document), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal webhook subscription %s: %w", eventType, err)
	}

	return &sub, nil
}

// ListWebhooks retrieves all registered subscriptions.
func (s *Store) ListWebhooks(ctx context.Context) ([]models.WebhookSubscription, error) {
	records, err := s.scanDocuments(ctx, s.webhookKeyPrefix())
	if err != nil {
		return nil, err
	}

	subs := make([]models.WebhookSubscription, 0, len(records))
	for _, record := range records {
		var sub models.WebhookSubscription
		if err := json.Unmarshal([]byte(record.Document), &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal webhook record %s: %w", record.Key, err)
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

// DeleteWebhook removes the subscription for an event type.
func (s *Store) DeleteWebhook(ctx context.Context, eventType string) error {
	return s.deleteDocument(ctx, s.webhookKey(eventType))
}

// FlushAll removes every record under the store's key prefix. Test-reset only.
func (s *Store) FlushAll(ctx context.Context) error {
	records, err := s.scanDocuments(ctx, s.KeyPrefix+":")
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := s.deleteDocument(ctx, record.Key); err != nil {
			return err
		}
	}

	return nil
}
