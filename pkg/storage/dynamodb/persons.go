package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
)

// GetPerson retrieves a person record by its ID.
func (s *Store) GetPerson(ctx context.Context, personID string) (*models.Person, error) {
	document, ok, err := s.getDocument(ctx, s.personKey(personID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, storage.ErrPersonNotFound
	}

	var person models.Person
	if err := json.Unmarshal([]byte(document), &person); err != nil {
		return nil, fmt.Errorf("failed to unmarshal person %s: %w", personID, err)
	}
	person.Normalize()

	return &person, nil
}

// GetPersons retrieves multiple person records in one batch. Missing IDs are
// skipped.
func (s *Store) GetPersons(ctx context.Context, personIDs []string) ([]models.Person, error) {
	keys := make([]string, 0, len(personIDs))
	for _, id := range personIDs {
		keys = append(keys, s.personKey(id))
	}

	records, err := s.batchGetDocuments(ctx, keys)
	if err != nil {
		return nil, err
	}

	persons := make([]models.Person, 0, len(records))
	for _, record := range records {
		var person models.Person
		if err := json.Unmarshal([]byte(record.Document), &person); err != nil {
			return nil, fmt.Errorf("failed to unmarshal person record %s: %w", record.Key, err)
		}
		person.Normalize()
		persons = append(persons, person)
	}

	return persons, nil
}

// ListPersons retrieves all person records, newest first.
func (s *Store) ListPersons(ctx context.Context) ([]models.Person, error) {
	records, err := s.scanDocuments(ctx, s.personKeyPrefix())
	if err != nil {
		return nil, err
	}

	persons := make([]models.Person, 0, len(records))
	for _, record := range records {
		var person models.Person
		if err := json.Unmarshal([]byte(record.Document), &person); err != nil {
			return nil, fmt.Errorf("failed to unmarshal person record %s: %w", record.Key, err)
		}
		person.Normalize()
		persons = append(persons, person)
	}

	storage.SortPersons(persons)
	return persons, nil
}

// FindPersonByAccountID locates the person owning the checking or billing
// account with the given ID.
func (s *Store) FindPersonByAccountID(ctx context.Context, accountID string) (*models.Person, error) {
	persons, err := s.ListPersons(ctx)
	if err != nil {
		return nil, err
	}

	for i := range persons {
		p := &persons[i]
		if p.Account != nil && p.Account.ID == accountID {
			return p, nil
		}
		if p.BillingAccount != nil && p.BillingAccount.ID == accountID {
			return p, nil
		}
	}

	return nil, storage.ErrPersonNotFound
}

// SavePerson recomputes the derived balances and writes the record.
func (s *Store) SavePerson(ctx context.Context, person *models.Person, opts storage.SaveOptions) error {
	person.Normalize()
	s.Calculator.Recalculate(person, s.now(), opts.SkipInterest)

	document, err := json.Marshal(person)
	if err != nil {
		return fmt.Errorf("failed to marshal person %s: %w", person.ID, err)
	}

	return s.putDocument(ctx, s.personKey(person.ID), string(document))
}

// DeletePerson removes a person record.
func (s *Store) DeletePerson(ctx context.Context, personID string) error {
	return s.deleteDocument(ctx, s.personKey(personID))
}
