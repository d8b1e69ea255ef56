package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/bankmock/bankmock/pkg/ledger"
	"github.com/bankmock/bankmock/pkg/locks"
	"github.com/bankmock/bankmock/pkg/scheduler"
	dydbstore "github.com/bankmock/bankmock/pkg/storage/dynamodb"
	"github.com/bankmock/bankmock/pkg/transfers"
	"github.com/bankmock/bankmock/pkg/webhooks"
	"github.com/joho/godotenv"
)

var transferService *transfers.Service

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqs.NewFromConfig(cfg), sqsQueueURL)

	tableName := os.Getenv("DYNAMODB_KV_TABLE_NAME")
	if tableName == "" {
		log.Fatal("DYNAMODB_KV_TABLE_NAME environment variable not set")
	}
	keyPrefix := os.Getenv("KV_KEY_PREFIX")
	if keyPrefix == "" {
		keyPrefix = "bankmock"
	}

	calculator := ledger.Calculator{Interest: ledger.NewDailyAccruer()}
	store := dydbstore.New(awsdynamodb.NewFromConfig(cfg), calculator, tableName, keyPrefix)

	transferService = transfers.NewService(store, webhooks.NewHTTPNotifier(store), sqsScheduler, locks.New(), nil)
}

// HandleRequest is triggered by an EventBridge Schedule. It re-enqueues
// queued bookings whose scheduled settlement never arrived.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation of overdue queued bookings...")

	count, err := transferService.RescheduleDueSettlements(ctx)
	if err != nil {
		log.Printf("ERROR: reconciliation failed: %v", err)
		return err
	}

	if count == 0 {
		log.Println("No overdue queued bookings found.")
		return nil
	}

	log.Printf("Re-enqueued %d queued bookings.", count)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
