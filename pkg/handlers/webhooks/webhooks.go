package webhooks

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bankmock/bankmock/pkg/api"
	"github.com/bankmock/bankmock/pkg/mapping"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// WebhooksHandler holds the dependencies for webhook subscription handlers.
type WebhooksHandler struct {
	Store storage.WebhookStore
}

// NewWebhooksHandler creates a new WebhooksHandler.
func NewWebhooksHandler(store storage.WebhookStore) *WebhooksHandler {
	return &WebhooksHandler{Store: store}
}

// Register handles the logic for subscribing a URL to an event type.
func (h *WebhooksHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.WebhookRegistration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.EventType == "" || req.Url == "" {
		http.Error(w, "event_type and url are required", http.StatusBadRequest)
		return
	}

	sub := mapping.ToDomainWebhook(&req)
	if err := h.Store.SaveWebhook(r.Context(), sub); err != nil {
		http.Error(w, fmt.Sprintf("Failed to save webhook: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(sub); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// List handles the logic for retrieving all subscriptions.
func (h *WebhooksHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Store.ListWebhooks(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve webhooks: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(subs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Delete handles the logic for removing the subscription of an event type.
func (h *WebhooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventType := chi.URLParam(r, "event_type")

	if _, err := h.Store.GetWebhookByType(r.Context(), eventType); err != nil {
		if errors.Is(err, storage.ErrWebhookNotFound) {
			http.Error(w, "Webhook not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve webhook: %v", err), http.StatusInternalServerError)
		}
		return
	}

	if err := h.Store.DeleteWebhook(r.Context(), eventType); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete webhook: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
