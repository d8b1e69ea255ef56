package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/google/uuid"
)

// HTTPNotifier is the default Notifier. It looks up the subscription for the
// event type and POSTs the event envelope to the subscriber URL in a detached
// goroutine. Events emitted for event types without a subscription are
// dropped silently.
type HTTPNotifier struct {
	Store  storage.WebhookStore
	Client *http.Client
}

// NewHTTPNotifier creates an HTTPNotifier with a delivery timeout.
func NewHTTPNotifier(store storage.WebhookStore) *HTTPNotifier {
	return &HTTPNotifier{
		Store:  store,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Notifier = (*HTTPNotifier)(nil)

// Emit delivers the event asynchronously. The caller's context may already be
// cancelled by the time delivery runs; delivery uses its own deadline.
func (n *HTTPNotifier) Emit(ctx context.Context, eventType EventType, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		EventType: eventType,
		Payload:   payload,
	}

	go func() {
		deliveryCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := n.deliver(deliveryCtx, event); err != nil {
			slog.Error("webhook delivery failed", "event_type", eventType, "error", err)
		}
	}()
}

func (n *HTTPNotifier) deliver(ctx context.Context, event Event) error {
	sub, err := n.Store.GetWebhookByType(ctx, string(event.EventType))
	if err != nil {
		if errors.Is(err, storage.ErrWebhookNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up subscription: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to subscriber: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("subscriber responded with status %d", resp.StatusCode)
	}

	return nil
}
