package storage

import (
	"context"
	"sort"

	"github.com/bankmock/bankmock/pkg/models"
)

// SaveOptions tweaks a single SavePerson call.
type SaveOptions struct {
	// SkipInterest suppresses the overdraft interest accrual that otherwise
	// runs when the settled balance is negative.
	SkipInterest bool
}

// PersonReader defines the read side of the person store.
type PersonReader interface {
	// GetPerson retrieves a person record by its ID.
	GetPerson(ctx context.Context, personID string) (*models.Person, error)

	// GetPersons retrieves multiple person records in one round trip.
	// Missing IDs are skipped, not errors.
	GetPersons(ctx context.Context, personIDs []string) ([]models.Person, error)

	// ListPersons retrieves all persons, newest first.
	ListPersons(ctx context.Context) ([]models.Person, error)

	// FindPersonByAccountID locates the person owning the checking or billing
	// account with the given ID.
	FindPersonByAccountID(ctx context.Context, accountID string) (*models.Person, error)
}

// PersonWriter defines the write side of the person store. Every save
// recomputes the derived balances before the record is written, so persisted
// records never carry stale balances.
type PersonWriter interface {
	// SavePerson recomputes balances and writes the record.
	SavePerson(ctx context.Context, person *models.Person, opts SaveOptions) error

	// DeletePerson removes a person record.
	DeletePerson(ctx context.Context, personID string) error
}

// PersonStore combines the reader and writer interfaces.
type PersonStore interface {
	PersonReader
	PersonWriter
}

// SortPersons orders persons newest-first by createdAt; persons without a
// createdAt sort last. Shared by the store backends.
func SortPersons(persons []models.Person) {
	sort.SliceStable(persons, func(i, j int) bool {
		a, b := persons[i].CreatedAt, persons[j].CreatedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
