// Package main implements the scheduled Lambda that closes out bookings whose
// checkout date has passed.
package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"letstayinn-backend/application/services"
	"letstayinn-backend/infrastructure/config"
	"letstayinn-backend/infrastructure/di"
)

// Global dependencies reused across warm invocations.
var (
	bookingService *services.BookingService
	logger         *zap.Logger
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

	bookingService = container.BookingService
	logger = container.Logger
}

// SweepResult reports what a single run completed.
type SweepResult struct {
	Completed int    `json:"completed"`
	SweptAt   string `json:"swept_at"`
}

func handler(ctx context.Context) (SweepResult, error) {
	now := time.Now().UTC()

	completed, err := bookingService.CompleteExpired(ctx, now)
	if err != nil {
		logger.Error("booking sweep failed",
			zap.Int("completed_before_failure", completed),
			zap.Error(err))
		return SweepResult{}, err
	}

	logger.Info("booking sweep finished", zap.Int("completed", completed))
	return SweepResult{
		Completed: completed,
		SweptAt:   now.Format(time.RFC3339),
	}, nil
}

func main() {
	lambda.Start(handler)
}
