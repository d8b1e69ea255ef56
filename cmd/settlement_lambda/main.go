package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
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
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

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

	// The settlement lambda never schedules, so it gets no scheduler.
	transferService = transfers.NewService(store, webhooks.NewHTTPNotifier(store), nil, locks.New(), nil)
}

// HandleRequest processes SQS settlement messages.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var msg scheduler.SettlementMessage
		if err := json.Unmarshal([]byte(message.Body), &msg); err != nil {
			log.Printf("ERROR: failed to unmarshal settlement message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		log.Printf("Attempting to settle booking %s for person %s", msg.BookingID, msg.PersonID)

		if err := transferService.SettleQueuedBooking(ctx, msg.PersonID, msg.BookingID); err != nil {
			// Redelivery after a booking was already settled is expected; skip it.
			if errors.Is(err, transfers.ErrBookingNotFound) {
				log.Printf("Booking %s already settled, skipping", msg.BookingID)
				continue
			}
			log.Printf("ERROR: failed to settle booking %s: %v", msg.BookingID, err)
			return err
		}

		log.Printf("Successfully settled booking %s", msg.BookingID)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
