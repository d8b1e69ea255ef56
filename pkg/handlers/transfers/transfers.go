package transfers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bankmock/bankmock/pkg/api"
	"github.com/bankmock/bankmock/pkg/mapping"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/transfers"
	"github.com/go-chi/chi/v5"
)

// TransfersHandler holds the dependencies for transfer-related handlers.
type TransfersHandler struct {
	Transfers *transfers.Service
}

// NewTransfersHandler creates a new TransfersHandler.
func NewTransfersHandler(service *transfers.Service) *TransfersHandler {
	return &TransfersHandler{Transfers: service}
}

// CreateTransfer handles the logic for creating an outgoing SEPA transfer.
func (h *TransfersHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "person_id")

	var req api.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	params := mapping.ToDomainTransfer(personID, &req)

	booking, err := h.Transfers.CreateTransfer(r.Context(), params)
	if err != nil {
		if errors.Is(err, storage.ErrPersonNotFound) {
			http.Error(w, "Person not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create transfer: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(booking); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
