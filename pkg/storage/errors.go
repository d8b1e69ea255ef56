package storage

import "errors"

// ErrPersonNotFound is returned when no person record exists for the given ID.
var ErrPersonNotFound = errors.New("person not found")

// ErrWebhookNotFound is returned when no subscription exists for the given event type.
var ErrWebhookNotFound = errors.New("webhook subscription not found")
