// Package memory implements the storage interfaces on an in-process map. It
// keeps the same JSON-document-per-key layout as the DynamoDB backend, so
// records round-trip identically through either.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bankmock/bankmock/pkg/ledger"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
)

// Store implements the Storage interface with an in-memory map of JSON
// documents. Safe for concurrent use.
type Store struct {
	Calculator ledger.Calculator
	KeyPrefix  string

	// Now is the clock used for balance recomputation; overridable in tests.
	Now func() time.Time

	mu   sync.RWMutex
	data map[string]string
}

// New creates a new Store.
func New(calculator ledger.Calculator, keyPrefix string) *Store {
	return &Store{
		Calculator: calculator,
		KeyPrefix:  keyPrefix,
		Now:        time.Now,
		data:       make(map[string]string),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) personKey(personID string) string {
	return s.KeyPrefix + ":person:" + personID
}

func (s *Store) webhookKey(eventType string) string {
	return s.KeyPrefix + ":webhook:" + eventType
}

// get returns the document under key, if present.
func (s *Store) get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	document, ok := s.data[key]
	return document, ok
}

// listByPrefix returns all documents whose key starts with prefix.
func (s *Store) listByPrefix(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var documents []string
	for key, document := range s.data {
		if strings.HasPrefix(key, prefix) {
			documents = append(documents, document)
		}
	}
	return documents
}

// GetPerson retrieves a person record by its ID.
func (s *Store) GetPerson(ctx context.Context, personID string) (*models.Person, error) {
	document, ok := s.get(s.personKey(personID))
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

// GetPersons retrieves multiple person records. Missing IDs are skipped.
func (s *Store) GetPersons(ctx context.Context, personIDs []string) ([]models.Person, error) {
	persons := make([]models.Person, 0, len(personIDs))
	for _, id := range personIDs {
		person, err := s.GetPerson(ctx, id)
		if err != nil {
			if err == storage.ErrPersonNotFound {
				continue
			}
			return nil, err
		}
		persons = append(persons, *person)
	}
	return persons, nil
}

// ListPersons retrieves all person records, newest first.
func (s *Store) ListPersons(ctx context.Context) ([]models.Person, error) {
	documents := s.listByPrefix(s.KeyPrefix + ":person:")

	persons := make([]models.Person, 0, len(documents))
	for _, document := range documents {
		var person models.Person
		if err := json.Unmarshal([]byte(document), &person); err != nil {
			return nil, fmt.Errorf("failed to unmarshal person record: %w", err)
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

	s.mu.Lock()
	s.data[s.personKey(person.ID)] = string(document)
	s.mu.Unlock()

	return nil
}

// DeletePerson removes a person record.
func (s *Store) DeletePerson(ctx context.Context, personID string) error {
	s.mu.Lock()
	delete(s.data, s.personKey(personID))
	s.mu.Unlock()
	return nil
}

// SaveWebhook registers (or replaces) the subscription for an event type.
func (s *Store) SaveWebhook(ctx context.Context, sub models.WebhookSubscription) error {
	document, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook subscription: %w", err)
	}

	s.mu.Lock()
	s.data[s.webhookKey(sub.EventType)] = string(document)
	s.mu.Unlock()

	return nil
}

// GetWebhookByType retrieves the subscription for an event type.
func (s *Store) GetWebhookByType(ctx context.Context, eventType string) (*models.WebhookSubscription, error) {
	document, ok := s.get(s.webhookKey(eventType))
	if !ok {
		return nil, storage.ErrWebhookNotFound
	}

	var sub models.WebhookSubscription
	if err := json.Unmarshal([]byte(document), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal webhook subscription %s: %w", eventType, err)
	}

	return &sub, nil
}

// ListWebhooks retrieves all registered subscriptions.
func (s *Store) ListWebhooks(ctx context.Context) ([]models.WebhookSubscription, error) {
	documents := s.listByPrefix(s.KeyPrefix + ":webhook:")

	subs := make([]models.WebhookSubscription, 0, len(documents))
	for _, document := range documents {
		var sub models.WebhookSubscription
		if err := json.Unmarshal([]byte(document), &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal webhook record: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

// DeleteWebhook removes the subscription for an event type.
func (s *Store) DeleteWebhook(ctx context.Context, eventType string) error {
	s.mu.Lock()
	delete(s.data, s.webhookKey(eventType))
	s.mu.Unlock()
	return nil
}

// FlushAll removes every record. Test-reset only.
func (s *Store) FlushAll(ctx context.Context) error {
	s.mu.Lock()
	s.data = make(map[string]string)
	s.mu.Unlock()
	return nil
}
