// Package sqs publishes booking lifecycle events to the cleanup queue.
package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/infrastructure/config"
)

// Client is the subset of the SQS API the publisher uses.
type Client interface {
	SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error)
}

// NewClient builds an SQS client from application configuration.
func NewClient(ctx context.Context, cfg *config.Config) (*awssqs.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return awssqs.NewFromConfig(awsCfg), nil
}

// EventCancelled is the event name carried in cancellation messages.
const EventCancelled = "BOOKING_CANCELLED"

// Publisher sends booking events to one queue.
type Publisher struct {
	client   Client
	queueURL string
	logger   *zap.Logger
}

// NewPublisher creates a publisher bound to a queue URL.
func NewPublisher(client Client, queueURL string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:   client,
		queueURL: queueURL,
		logger:   logger.Named("booking-publisher"),
	}
}

// PublishCancelled sends a BOOKING_CANCELLED message so the downstream
// consumer can delete the booking's service requests.
func (p *Publisher) PublishCancelled(ctx context.Context, event ports.BookingEvent) error {
	event.Event = EventCancelled
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling booking event: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &awssqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("publishing booking event: %w", err)
	}

	p.logger.Info("booking cancellation published", zap.String("booking_id", event.BookingID))
	return nil
}
