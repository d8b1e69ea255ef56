package backoffice

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bankmock/bankmock/pkg/seed"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/transfers"
	"github.com/go-chi/chi/v5"
)

// BackofficeHandler holds the dependencies for the test-support endpoints.
// These exist for client integration suites, not for the banking surface.
type BackofficeHandler struct {
	Store     storage.Storage
	Transfers *transfers.Service
}

// NewBackofficeHandler creates a new BackofficeHandler.
func NewBackofficeHandler(store storage.Storage, transferService *transfers.Service) *BackofficeHandler {
	return &BackofficeHandler{Store: store, Transfers: transferService}
}

// Seed handles the logic for loading the fixture persons.
func (h *BackofficeHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := seed.Apply(r.Context(), h.Store); err != nil {
		http.Error(w, fmt.Sprintf("Failed to seed fixtures: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Mock data generated"))
}

// ProcessQueuedBookings handles the logic for settling all of a person's
// queued bookings immediately.
func (h *BackofficeHandler) ProcessQueuedBookings(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "person_id")

	if _, err := h.Transfers.ProcessQueuedBookings(r.Context(), personID); err != nil {
		if errors.Is(err, storage.ErrPersonNotFound) {
			http.Error(w, "Person not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to process queued bookings: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Flush handles the logic for wiping the store.
func (h *BackofficeHandler) Flush(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.FlushAll(r.Context()); err != nil {
		http.Error(w, fmt.Sprintf("Failed to flush store: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
