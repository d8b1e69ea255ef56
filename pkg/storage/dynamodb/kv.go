package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// getDocument retrieves the JSON document stored under key. A missing key
// returns ok=false, not an error.
func (s *Store) getDocument(ctx context.Context, key string) (string, bool, error) {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"k": key})
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal key: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName),
		Key:       keyAV,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return "", false, fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return "", false, nil
	}

	var record kvRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return record.Document, true, nil
}

// putDocument writes the JSON document under key, replacing any existing one.
func (s *Store) putDocument(ctx context.Context, key, document string) error {
	recordAV, err := attributevalue.MarshalMap(kvRecord{Key: key, Document: document})
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      recordAV,
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to put item in DynamoDB: %w", err)
	}

	return nil
}

// deleteDocument removes the record under key. Deleting a missing key is not
// an error.
func (s *Store) deleteDocument(ctx context.Context, key string) error {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"k": key})
	if err != nil {
		return fmt.Errorf("failed to marshal key: %w", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(s.TableName),
		Key:       keyAV,
	}

	if _, err := s.Client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to delete item from DynamoDB: %w", err)
	}

	return nil
}

// scanDocuments retrieves every record whose key starts with prefix,
// following pagination.
func (s *Store) scanDocuments(ctx context.Context, prefix string) ([]kvRecord, error) {
	var records []kvRecord
	var startKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:        aws.String(s.TableName),
			FilterExpression: aws.String("begins_with(k, :prefix)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: prefix},
			},
			ExclusiveStartKey: startKey,
		}

		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan DynamoDB table: %w", err)
		}

		var page []kvRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal records: %w", err)
		}
		records = append(records, page...)

		if result.LastEvaluatedKey == nil {
			return records, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// batchGetDocuments retrieves the records for the given keys in one round
// trip. Missing keys are skipped; unprocessed keys are retried.
func (s *Store) batchGetDocuments(ctx context.Context, keys []string) ([]kvRecord, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	pending := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, key := range keys {
		keyAV, err := attributevalue.MarshalMap(map[string]string{"k": key})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key: %w", err)
		}
		pending = append(pending, keyAV)
	}

	var records []kvRecord
	for len(pending) > 0 {
		input := &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				s.TableName: {Keys: pending},
			},
		}

		result, err := s.Client.BatchGetItem(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to batch get items from DynamoDB: %w", err)
		}

		var page []kvRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Responses[s.TableName], &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal records: %w", err)
		}
		records = append(records, page...)

		pending = result.UnprocessedKeys[s.TableName].Keys
	}

	return records, nil
}
