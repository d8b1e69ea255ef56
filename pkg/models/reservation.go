package models

import (
	"encoding/json"
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ReservationType identifies what a hold was created for.
type ReservationType string

const (
	CARD_AUTHORIZATION ReservationType = "CARD_AUTHORIZATION"
)

// ReservationStatus is the lifecycle state of a reservation.
// OPEN -> RESOLVED is the only transition; RESOLVED is terminal.
type ReservationStatus string

const (
	OPEN     ReservationStatus = "OPEN"
	RESOLVED ReservationStatus = "RESOLVED"
)

// Reservation is a temporary hold against the available balance, created by a
// card authorization and removed when the authorization is booked. ExpiresAt
// is a stored timestamp only; expiry is not actively enforced.
type Reservation struct {
	ID              string               `json:"id"`
	Amount          Amount               `json:"amount"`
	ReservationType ReservationType      `json:"reservation_type"`
	Reference       string               `json:"reference,omitempty"`
	Status          ReservationStatus    `json:"status"`
	MetaInfo        *TransactionMetaInfo `json:"meta_info,omitempty"`
	ExpiresAt       *openapi_types.Date  `json:"expires_at,omitempty"`
	ExpiredAt       *time.Time           `json:"expired_at"`
	ResolvedAt      *time.Time           `json:"resolved_at"`
	Description     string               `json:"description,omitempty"`
}

// Resolved returns a copy with status RESOLVED and the resolution timestamp
// stamped. The original is left untouched.
func (r Reservation) Resolved(at time.Time) Reservation {
	r.Status = RESOLVED
	r.ResolvedAt = &at
	return r
}

// ReservationSet holds an account's open reservations keyed by id while
// preserving insertion order. It marshals as the plain JSON array the client
// fixtures expect. Keying by id makes removal O(1) and duplicate ids
// impossible.
type ReservationSet struct {
	order []string
	byID  map[string]*Reservation
}

// NewReservationSet builds a set from zero or more reservations.
func NewReservationSet(reservations ...Reservation) ReservationSet {
	var s ReservationSet
	for i := range reservations {
		_ = s.Add(reservations[i])
	}
	return s
}

// Len reports the number of open reservations.
func (s *ReservationSet) Len() int {
	return len(s.order)
}

// Add appends a reservation. Adding an id that is already present is an error.
func (s *ReservationSet) Add(r Reservation) error {
	if s.byID == nil {
		s.byID = make(map[string]*Reservation)
	}
	if _, ok := s.byID[r.ID]; ok {
		return fmt.Errorf("reservation %s already exists", r.ID)
	}
	s.byID[r.ID] = &r
	s.order = append(s.order, r.ID)
	return nil
}

// Get returns the reservation with the given id, if present.
func (s *ReservationSet) Get(id string) (Reservation, bool) {
	r, ok := s.byID[id]
	if !ok {
		return Reservation{}, false
	}
	return *r, true
}

// Remove deletes the reservation with the given id and returns it.
func (s *ReservationSet) Remove(id string) (Reservation, bool) {
	r, ok := s.byID[id]
	if !ok {
		return Reservation{}, false
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return *r, true
}

// All returns the reservations in insertion order.
func (s *ReservationSet) All() []Reservation {
	out := make([]Reservation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// MarshalJSON encodes the set as a JSON array in insertion order.
func (s ReservationSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.All())
}

// UnmarshalJSON decodes a JSON array. Null decodes to an empty set; entries
// with a duplicate id keep the first occurrence.
func (s *ReservationSet) UnmarshalJSON(data []byte) error {
	*s = ReservationSet{}
	var list []Reservation
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	for i := range list {
		if _, ok := s.byID[list[i].ID]; ok {
			continue
		}
		if err := s.Add(list[i]); err != nil {
			return err
		}
	}
	return nil
}
