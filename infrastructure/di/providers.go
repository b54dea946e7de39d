// Package di wires the application together.
package di

import (
	"context"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/application/services"
	"letstayinn-backend/infrastructure/config"
	"letstayinn-backend/infrastructure/messaging/sqs"
	"letstayinn-backend/infrastructure/persistence/dynamodb"
	"letstayinn-backend/interfaces/http/rest"
	"letstayinn-backend/interfaces/http/rest/handlers"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(ctx context.Context, cfg *config.Config) (*awsdynamodb.Client, error) {
	return dynamodb.NewClient(ctx, cfg)
}

// ProvideStore creates the single-table store
func ProvideStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) *dynamodb.Store {
	return dynamodb.NewStore(client, cfg.DynamoDBTable, logger)
}

// ProvideSQSClient creates an SQS client
func ProvideSQSClient(ctx context.Context, cfg *config.Config) (*awssqs.Client, error) {
	return sqs.NewClient(ctx, cfg)
}

// ProvideBookingEventPublisher creates the cancellation event publisher
func ProvideBookingEventPublisher(client *awssqs.Client, cfg *config.Config, logger *zap.Logger) ports.BookingEventPublisher {
	return sqs.NewPublisher(client, cfg.BookingQueue, logger)
}

// ProvideUserRepository creates the user repository
func ProvideUserRepository(store *dynamodb.Store, logger *zap.Logger) ports.UserRepository {
	return dynamodb.NewUserRepository(store, logger)
}

// ProvideEmployeeRepository creates the employee repository
func ProvideEmployeeRepository(store *dynamodb.Store, logger *zap.Logger) ports.EmployeeRepository {
	return dynamodb.NewEmployeeRepository(store, logger)
}

// ProvideRoomRepository creates the room repository
func ProvideRoomRepository(store *dynamodb.Store, logger *zap.Logger) ports.RoomRepository {
	return dynamodb.NewRoomRepository(store, logger)
}

// ProvideBookingRepository creates the booking repository
func ProvideBookingRepository(store *dynamodb.Store, logger *zap.Logger) ports.BookingRepository {
	return dynamodb.NewBookingRepository(store, logger)
}

// ProvideServiceRequestRepository creates the service request repository
func ProvideServiceRequestRepository(store *dynamodb.Store, logger *zap.Logger) ports.ServiceRequestRepository {
	return dynamodb.NewServiceRequestRepository(store, logger)
}

// ProvideFeedbackRepository creates the feedback repository
func ProvideFeedbackRepository(store *dynamodb.Store, logger *zap.Logger) ports.FeedbackRepository {
	return dynamodb.NewFeedbackRepository(store, logger)
}

// ProvideJWTGenerator creates the token issuer
func ProvideJWTGenerator(cfg *config.Config) (*auth.JWTGenerator, error) {
	return auth.NewJWTGenerator(jwtConfig(cfg))
}

// ProvideJWTValidator creates the token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(jwtConfig(cfg))
}

func jwtConfig(cfg *config.Config) auth.JWTConfig {
	secret := cfg.JWTSecret
	if secret == "" && cfg.IsDevelopment() {
		secret = "development-secret-change-in-production"
	}
	return auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		Expiry:    cfg.TokenExpiry,
	}
}

// ProvideUserService creates the user service
func ProvideUserService(users ports.UserRepository, generator *auth.JWTGenerator, logger *zap.Logger) *services.UserService {
	return services.NewUserService(users, generator, logger)
}

// ProvideEmployeeService creates the employee service
func ProvideEmployeeService(employees ports.EmployeeRepository, logger *zap.Logger) *services.EmployeeService {
	return services.NewEmployeeService(employees, logger)
}

// ProvideRoomService creates the room service
func ProvideRoomService(rooms ports.RoomRepository, logger *zap.Logger) *services.RoomService {
	return services.NewRoomService(rooms, logger)
}

// ProvideBookingService creates the booking service
func ProvideBookingService(bookings ports.BookingRepository, rooms ports.RoomRepository, publisher ports.BookingEventPublisher, logger *zap.Logger) *services.BookingService {
	return services.NewBookingService(bookings, rooms, publisher, logger)
}

// ProvideServiceRequestService creates the service request service
func ProvideServiceRequestService(requests ports.ServiceRequestRepository, bookings ports.BookingRepository, employees ports.EmployeeRepository, logger *zap.Logger) *services.ServiceRequestService {
	return services.NewServiceRequestService(requests, bookings, employees, logger)
}

// ProvideFeedbackService creates the feedback service
func ProvideFeedbackService(feedback ports.FeedbackRepository, logger *zap.Logger) *services.FeedbackService {
	return services.NewFeedbackService(feedback, logger)
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(logger *zap.Logger) *appErrors.ErrorHandler {
	return appErrors.NewErrorHandler(logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	validator *auth.JWTValidator,
	userSvc *services.UserService,
	roomSvc *services.RoomService,
	bookingSvc *services.BookingService,
	requestSvc *services.ServiceRequestService,
	employeeSvc *services.EmployeeService,
	feedbackSvc *services.FeedbackService,
	errorHandler *appErrors.ErrorHandler,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(
		cfg,
		validator,
		handlers.NewAuthHandler(userSvc, errorHandler, logger),
		handlers.NewRoomHandler(roomSvc, errorHandler, logger),
		handlers.NewBookingHandler(bookingSvc, errorHandler, logger),
		handlers.NewServiceRequestHandler(requestSvc, errorHandler, logger),
		handlers.NewEmployeeHandler(employeeSvc, errorHandler, logger),
		handlers.NewFeedbackHandler(feedbackSvc, errorHandler, logger),
		logger,
	)
}
