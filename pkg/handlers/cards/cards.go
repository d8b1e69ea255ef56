package cards

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bankmock/bankmock/pkg/api"
	"github.com/bankmock/bankmock/pkg/cards"
	"github.com/bankmock/bankmock/pkg/mapping"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// CardsHandler holds the dependencies for card-related handlers.
type CardsHandler struct {
	Engine *cards.Service
}

// NewCardsHandler creates a new CardsHandler.
func NewCardsHandler(engine *cards.Service) *CardsHandler {
	return &CardsHandler{Engine: engine}
}

// Spend handles the logic for simulating a card authorization.
func (h *CardsHandler) Spend(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "person_id")

	var req api.SpendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	params := mapping.ToDomainSpend(personID, &req)

	reservation, err := h.Engine.CreateReservation(r.Context(), params)
	if err != nil {
		writeSpendError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(reservation); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ResolveReservation handles the logic for resolving an open reservation.
func (h *CardsHandler) ResolveReservation(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "person_id")
	reservationID := chi.URLParam(r, "reservation_id")

	var req api.ResolveReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	err := h.Engine.UpdateReservation(r.Context(), personID, reservationID, cards.ActionType(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrPersonNotFound), errors.Is(err, cards.ErrReservationNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to resolve reservation: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeSpendError maps reservation engine errors to HTTP statuses: missing
// records are 404, card state conflicts 409, money and limit declines 422.
func writeSpendError(w http.ResponseWriter, err error) {
	var limitErr *cards.LimitExceededError

	switch {
	case errors.Is(err, storage.ErrPersonNotFound), errors.Is(err, cards.ErrCardNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, cards.ErrCardBlocked), errors.Is(err, cards.ErrCardInactive), errors.Is(err, cards.ErrCardNotActive):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, cards.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &limitErr):
		http.Error(w, limitErr.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, fmt.Sprintf("Failed to create reservation: %v", err), http.StatusInternalServerError)
	}
}
