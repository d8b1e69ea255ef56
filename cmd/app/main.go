package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/bankmock/bankmock/pkg/cards"
	"github.com/bankmock/bankmock/pkg/handlers"
	"github.com/bankmock/bankmock/pkg/ledger"
	"github.com/bankmock/bankmock/pkg/locks"
	"github.com/bankmock/bankmock/pkg/scheduler"
	"github.com/bankmock/bankmock/pkg/seed"
	"github.com/bankmock/bankmock/pkg/storage"
	dydbstore "github.com/bankmock/bankmock/pkg/storage/dynamodb"
	memstore "github.com/bankmock/bankmock/pkg/storage/memory"
	"github.com/bankmock/bankmock/pkg/transfers"
	"github.com/bankmock/bankmock/pkg/webhooks"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	calculator := ledger.Calculator{Interest: ledger.NewDailyAccruer()}

	keyPrefix := os.Getenv("KV_KEY_PREFIX")
	if keyPrefix == "" {
		keyPrefix = "bankmock"
	}

	var store storage.Storage
	var sched scheduler.Scheduler
	var timer *scheduler.TimerScheduler

	switch backend := os.Getenv("STORAGE_BACKEND"); backend {
	case "", "memory":
		store = memstore.New(calculator, keyPrefix)
		timer = scheduler.NewInProcessScheduler()
		sched = timer
		logger.Info("using in-memory storage")
	case "dynamodb":
		cfg, err := config.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}

		tableName := os.Getenv("DYNAMODB_KV_TABLE_NAME")
		if tableName == "" {
			log.Fatal("DYNAMODB_KV_TABLE_NAME environment variable not set")
		}
		store = dydbstore.New(awsdynamodb.NewFromConfig(cfg), calculator, tableName, keyPrefix)

		sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
		if sqsQueueURL == "" {
			log.Fatal("SQS_QUEUE_URL environment variable not set")
		}
		sched = scheduler.NewSQSScheduler(sqs.NewFromConfig(cfg), sqsQueueURL)
		logger.Info("using DynamoDB storage", "table", tableName)
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", backend)
	}

	keyedLocks := locks.New()
	notifier := webhooks.NewHTTPNotifier(store)
	engine := cards.NewService(store, notifier, keyedLocks)
	transferService := transfers.NewService(store, notifier, sched, keyedLocks, logger)
	if timer != nil {
		timer.Handle = func(ctx context.Context, msg scheduler.SettlementMessage) error {
			return transferService.SettleQueuedBooking(ctx, msg.PersonID, msg.BookingID)
		}
	}

	if err := seed.Apply(context.Background(), store); err != nil {
		log.Fatalf("failed to seed fixture data: %v", err)
	}

	router := handlers.NewRouter(handlers.Deps{
		Store:     store,
		Engine:    engine,
		Transfers: transferService,
		Logger:    logger,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	logger.Info("starting server", "port", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
