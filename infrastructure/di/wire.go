//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"letstayinn-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDynamoDBClient,
	ProvideStore,
	ProvideSQSClient,
	ProvideBookingEventPublisher,
	ProvideUserRepository,
	ProvideEmployeeRepository,
	ProvideRoomRepository,
	ProvideBookingRepository,
	ProvideServiceRequestRepository,
	ProvideFeedbackRepository,
	ProvideJWTGenerator,
	ProvideJWTValidator,
	ProvideUserService,
	ProvideEmployeeService,
	ProvideRoomService,
	ProvideBookingService,
	ProvideServiceRequestService,
	ProvideFeedbackService,
	ProvideErrorHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
