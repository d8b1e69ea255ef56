package persons

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// PersonsHandler holds the dependencies for person-related handlers.
type PersonsHandler struct {
	Store storage.PersonReader
}

// NewPersonsHandler creates a new PersonsHandler.
func NewPersonsHandler(store storage.PersonReader) *PersonsHandler {
	return &PersonsHandler{Store: store}
}

// ListPersons handles the logic for retrieving all persons.
func (h *PersonsHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.Store.ListPersons(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve persons: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(persons); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetPerson handles the logic for retrieving a person by ID.
func (h *PersonsHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "person_id")

	person, err := h.Store.GetPerson(r.Context(), personID)
	if err != nil {
		if errors.Is(err, storage.ErrPersonNotFound) {
			http.Error(w, "Person not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve person: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(person); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
