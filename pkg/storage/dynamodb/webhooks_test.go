package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bankmock/bankmock/pkg/models"
	"github.com/bankmock/bankmock/pkg/storage"
	"github.com/bankmock/bankmock/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveWebhook(t *testing.T) {
	sub := models.WebhookSubscription{EventType: "CARD_AUTHORIZATION", URL: "http://client.example/hook"}

	t.Run("Success", func(t *testing.T) {
		var written kvRecord
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			input := args.Get(1).(*awsdynamodb.PutItemInput)
			require.NoError(t, attributevalue.UnmarshalMap(input.Item, &written))
		}).Return(&awsdynamodb.PutItemOutput{}, nil)

		store := newTestStore(mockClient)
		require.NoError(t, store.SaveWebhook(context.Background(), sub))

		assert.Equal(t, "test:webhook:CARD_AUTHORIZATION", written.Key)
		assert.Contains(t, written.Document, "http://client.example/hook")
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("table missing"))

		store := newTestStore(mockClient)
		assert.Error(t, store.SaveWebhook(context.Background(), sub))
	})
}

func TestGetWebhookByType(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&awsdynamodb.GetItemOutput{}, nil)

		store := newTestStore(mockClient)
		_, err := store.GetWebhookByType(context.Background(), "BOOKINGS_CHANGED")

		assert.ErrorIs(t, err, storage.ErrWebhookNotFound)
	})
}

func TestFlushAll(t *testing.T) {
	records := []map[string]interface{}{
		{"k": "test:person:person-1", "v": "{}"},
		{"k": "test:webhook:CARD_AUTHORIZATION", "v": "{}"},
	}
	marshalled, err := marshalListOfMaps(records)
	require.NoError(t, err)

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Scan", mock.Anything, mock.Anything).Return(&awsdynamodb.ScanOutput{Items: marshalled}, nil)
	mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&awsdynamodb.DeleteItemOutput{}, nil).Twice()

	store := newTestStore(mockClient)
	require.NoError(t, store.FlushAll(context.Background()))

	mockClient.AssertNumberOfCalls(t, "DeleteItem", 2)
}
