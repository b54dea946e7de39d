// Package main implements the SQS-triggered Lambda that removes the service
// requests left behind by a cancelled booking.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/infrastructure/config"
	"letstayinn-backend/infrastructure/di"
)

// Global dependencies reused across warm invocations.
var (
	requests ports.ServiceRequestRepository
	logger   *zap.Logger
)

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container, err := di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}

	requests = container.ServiceRequestRepo
	logger = container.Logger
}

func handler(ctx context.Context, event awsevents.SQSEvent) error {
	for _, record := range event.Records {
		var msg ports.BookingEvent
		if err := json.Unmarshal([]byte(record.Body), &msg); err != nil {
			logger.Error("unparseable message dropped",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			continue
		}

		if msg.BookingID == "" {
			logger.Error("message without booking id dropped",
				zap.String("message_id", record.MessageId))
			continue
		}

		if err := requests.DeleteByBooking(ctx, msg.BookingID); err != nil {
			// Returning the error requeues the whole batch; deletes are
			// idempotent so reprocessing is safe.
			return fmt.Errorf("deleting requests for booking %s: %w", msg.BookingID, err)
		}

		logger.Info("service requests removed",
			zap.String("booking_id", msg.BookingID),
			zap.String("event_type", msg.Event))
	}
	return nil
}

func main() {
	lambda.Start(handler)
}
