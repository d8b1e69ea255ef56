// Package dynamodb implements the storage interfaces on a single DynamoDB
// key-value table. Records are JSON documents under namespaced string keys
// ("<prefix>:person:<id>", "<prefix>:webhook:<type>").
package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bankmock/bankmock/pkg/ledger"
	"github.com/bankmock/bankmock/pkg/storage"
)

// DynamoDBAPI defines the DynamoDB operations the store depends on,
// so the client can be mocked in tests.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client     DynamoDBAPI
	Calculator ledger.Calculator
	TableName  string
	KeyPrefix  string

	// Now is the clock used for balance recomputation; overridable in tests.
	Now func() time.Time
}

// New creates a new Store.
func New(client DynamoDBAPI, calculator ledger.Calculator, tableName, keyPrefix string) *Store {
	return &Store{
		Client:     client,
		Calculator: calculator,
		TableName:  tableName,
		KeyPrefix:  keyPrefix,
		Now:        time.Now,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// kvRecord is the single-table row shape: a namespaced key and a JSON document.
type kvRecord struct {
	Key      string `dynamodbav:"k"`
	Document string `dynamodbav:"v"`
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) personKey(personID string) string {
	return s.KeyPrefix + ":person:" + personID
}

func (s *Store) personKeyPrefix() string {
	return s.KeyPrefix + ":person:"
}

func (s *Store) webhookKey(eventType string) string {
	return s.KeyPrefix + ":webhook:" + eventType
}

func (s *Store) webhookKeyPrefix() string {
	return s.KeyPrefix + ":webhook:"
}
