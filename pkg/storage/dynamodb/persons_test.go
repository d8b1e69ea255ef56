package dynamodb

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bankmock/bankmock/pkg/ledger"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var testNow = time.Date(2023, time.April, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(client DynamoDBAPI) *Store {
	store := New(client, ledger.Calculator{}, "bank-kv", "test")
	store.Now = func() time.Time { return testNow }
	return store
}

// attributevalue has no MarshalListOfMaps counterpart to UnmarshalListOfMaps,
// so marshal each map individually.
func marshalListOfMaps(in []map[string]interface{}) ([]map[string]types.AttributeValue, error) {
	out := make([]map[string]types.AttributeValue, 0, len(in))
	for _, m := range in {
		av, err := attributevalue.MarshalMap(m)
		if err != nil {
			return nil, err
		}
		out = append(out, av)
	}
	return out, nil
}

func personItem(t *testing.T, person *models.Person) map[string]interface{} {
	t.Helper()
	document, err := json.Marshal(person)
	require.NoError(t, err)
	return map[string]interface{}{"k": "test:person:" + person.ID, "v": string(document)}
}

func TestGetPerson(t *testing.T) {
	person := &models.Person{ID: "person-1", Account: &models.Account{ID: "account-1"}}

	t.Run("Success", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(personItem(t, person))
		require.NoError(t, err)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{Item: item}, nil)

		store := newTestStore(mockClient)
		got, err := store.GetPerson(context.Background(), "person-1")

		require.NoError(t, err)
		assert.Equal(t, "person-1", got.ID)
		assert.NotNil(t, got.Transactions)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{}, nil)

		store := newTestStore(mockClient)
		_, err := store.GetPerson(context.Background(), "person-404")

		assert.ErrorIs(t, err, storage.ErrPersonNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("throughput exceeded"))

		store := newTestStore(mockClient)
		_, err := store.GetPerson(context.Background(), "person-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get item from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestSavePerson(t *testing.T) {
	t.Run("Recomputes Balances Before Writing", func(t *testing.T) {
		person := &models.Person{
			ID:      "person-1",
			Account: &models.Account{ID: "account-1"},
			Transactions: []models.Booking{
				{
					ID:         "t1",
					Amount:     models.Amount{Value: 10000},
					ValutaDate: openapi_types.Date{Time: testNow.AddDate(0, -1, 0)},
				},
			},
		}

		var written kvRecord
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			input := args.Get(1).(*awsdynamodb.PutItemInput)
			require.NoError(t, attributevalue.UnmarshalMap(input.Item, &written))
		}).Return(&awsdynamodb.PutItemOutput{}, nil)

		store := newTestStore(mockClient)
		require.NoError(t, store.SavePerson(context.Background(), person, storage.SaveOptions{}))

		assert.Equal(t, int64(10000), person.Account.Balance.Value)
		assert.Equal(t, "test:person:person-1", written.Key)

		var persisted models.Person
		require.NoError(t, json.Unmarshal([]byte(written.Document), &persisted))
		assert.Equal(t, int64(10000), persisted.Account.AvailableBalance.Value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("table missing"))

		store := newTestStore(mockClient)
		err := store.SavePerson(context.Background(), &models.Person{ID: "person-1"}, storage.SaveOptions{})

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestListPersons(t *testing.T) {
	t.Run("Sorts Newest First", func(t *testing.T) {
		older := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

		items := make([]map[string]interface{}, 0, 2)
		items = append(items, personItem(t, &models.Person{ID: "person-old", CreatedAt: &older}))
		items = append(items, personItem(t, &models.Person{ID: "person-new", CreatedAt: &newer}))

		marshalled, err := marshalListOfMaps(items)
		require.NoError(t, err)

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&awsdynamodb.ScanOutput{Items: marshalled}, nil)

		store := newTestStore(mockClient)
		persons, err := store.ListPersons(context.Background())

		require.NoError(t, err)
		require.Len(t, persons, 2)
		assert.Equal(t, "person-new", persons[0].ID)
		assert.Equal(t, "person-old", persons[1].ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("scan failed"))

		store := newTestStore(mockClient)
		_, err := store.ListPersons(context.Background())

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestFindPersonByAccountID(t *testing.T) {
	person := &models.Person{
		ID:      "person-1",
		Account: &models.Account{ID: "account-1"},
	}

	items := []map[string]interface{}{personItem(t, person)}
	marshalled, err := marshalListOfMaps(items)
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&awsdynamodb.ScanOutput{Items: marshalled}, nil)

		store := newTestStore(mockClient)
		got, err := store.FindPersonByAccountID(context.Background(), "account-1")

		require.NoError(t, err)
		assert.Equal(t, "person-1", got.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&awsdynamodb.ScanOutput{Items: marshalled}, nil)

		store := newTestStore(mockClient)
		_, err := store.FindPersonByAccountID(context.Background(), "account-404")

		assert.ErrorIs(t, err, storage.ErrPersonNotFound)
	})
}

func TestGetPersons(t *testing.T) {
	person := &models.Person{ID: "person-1"}

	item, err := attributevalue.MarshalMap(personItem(t, person))
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("BatchGetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.BatchGetItemOutput{
			Responses: map[string][]map[string]types.AttributeValue{"bank-kv": {item}},
		}, nil)

		store := newTestStore(mockClient)
		persons, err := store.GetPersons(context.Background(), []string{"person-1", "person-404"})

		require.NoError(t, err)
		require.Len(t, persons, 1)
		assert.Equal(t, "person-1", persons[0].ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty Input Short Circuits", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := newTestStore(mockClient)
		persons, err := store.GetPersons(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, persons)
		mockClient.AssertNotCalled(t, "BatchGetItem")
	})
}
