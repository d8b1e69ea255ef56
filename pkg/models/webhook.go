package models

// WebhookSubscription registers a subscriber URL for one event type.
type WebhookSubscription struct {
	EventType string `json:"event_type"`
	URL       string `json:"url"`
}
