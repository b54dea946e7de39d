package di

import (
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/application/services"
	"letstayinn-backend/infrastructure/config"
	"letstayinn-backend/interfaces/http/rest"
	appErrors "letstayinn-backend/pkg/errors"
)

// Container holds all application dependencies
type Container struct {
	Config             *config.Config
	Logger             *zap.Logger
	UserRepo           ports.UserRepository
	EmployeeRepo       ports.EmployeeRepository
	RoomRepo           ports.RoomRepository
	BookingRepo        ports.BookingRepository
	ServiceRequestRepo ports.ServiceRequestRepository
	FeedbackRepo       ports.FeedbackRepository
	Publisher          ports.BookingEventPublisher
	UserService        *services.UserService
	EmployeeService    *services.EmployeeService
	RoomService        *services.RoomService
	BookingService     *services.BookingService
	RequestService     *services.ServiceRequestService
	FeedbackService    *services.FeedbackService
	ErrorHandler       *appErrors.ErrorHandler
	Router             *rest.Router
}
