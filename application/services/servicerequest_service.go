package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/domain"
	appErrors "letstayinn-backend/pkg/errors"
)

// ServiceRequestService handles the in-room service request lifecycle:
// creation against an active booking, assignment to staff, and completion.
type ServiceRequestService struct {
	requests  ports.ServiceRequestRepository
	bookings  ports.BookingRepository
	employees ports.EmployeeRepository
	logger    *zap.Logger
}

// NewServiceRequestService creates a service request service.
func NewServiceRequestService(requests ports.ServiceRequestRepository, bookings ports.BookingRepository, employees ports.EmployeeRepository, logger *zap.Logger) *ServiceRequestService {
	return &ServiceRequestService{
		requests:  requests,
		bookings:  bookings,
		employees: employees,
		logger:    logger.Named("service-request-service"),
	}
}

// Create opens a service request for one of the guest's active bookings.
// The booking carries one flag per service type; a set flag means a request
// of that type is already outstanding and a second one is rejected. The flag
// is set on the booking before the request is written.
func (s *ServiceRequestService) Create(ctx context.Context, userID string, roomNum int, serviceType domain.ServiceType, details string) (domain.ServiceRequest, error) {
	bookings, err := s.bookings.ListActiveByUser(ctx, userID)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	if len(bookings) == 0 {
		return domain.ServiceRequest{}, appErrors.NewValidationError("no active bookings found")
	}

	var booking *domain.Booking
	for i := range bookings {
		if bookings[i].RoomNum == roomNum {
			booking = &bookings[i]
			break
		}
	}
	if booking == nil {
		return domain.ServiceRequest{}, appErrors.NewValidationError("invalid room number")
	}

	switch {
	case serviceType == domain.ServiceFood && !booking.FoodReq:
		booking.FoodReq = true
	case serviceType == domain.ServiceCleaning && !booking.CleanReq:
		booking.CleanReq = true
	default:
		return domain.ServiceRequest{}, appErrors.NewValidationError("service request already exists")
	}

	if err := s.bookings.Update(ctx, *booking); err != nil {
		return domain.ServiceRequest{}, err
	}

	request := domain.ServiceRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		BookingID: booking.ID,
		RoomNum:   roomNum,
		Type:      serviceType,
		Status:    domain.ServicePending,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.requests.Save(ctx, request); err != nil {
		return domain.ServiceRequest{}, err
	}
	return request, nil
}

// ListPending returns the global pending queue.
func (s *ServiceRequestService) ListPending(ctx context.Context) ([]domain.ServiceRequest, error) {
	return s.requests.ListPending(ctx)
}

// ListOwn returns the requests a guest has made.
func (s *ServiceRequestService) ListOwn(ctx context.Context, userID string) ([]domain.ServiceRequest, error) {
	return s.requests.ListRequestedBy(ctx, userID)
}

// ListAssigned returns the requests assigned to an employee.
func (s *ServiceRequestService) ListAssigned(ctx context.Context, employeeID string) ([]domain.ServiceRequest, error) {
	return s.requests.ListAssigned(ctx, employeeID)
}

// Assign hands a pending request to an employee. The employee must exist;
// double assignment is rejected by the repository's guard.
func (s *ServiceRequestService) Assign(ctx context.Context, requestID, employeeID string) error {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return err
	}
	return s.requests.Assign(ctx, requestID, employeeID)
}

// Complete moves a request from Pending to Done, the only legal transition,
// then clears the matching flag on the booking so the guest can request that
// service again.
func (s *ServiceRequestService) Complete(ctx context.Context, requestID string, newStatus domain.ServiceStatus) error {
	if newStatus != domain.ServiceDone {
		return appErrors.NewValidationError("invalid status").WithCode("INVALID_STATUS")
	}

	request, err := s.requests.UpdateStatus(ctx, requestID, domain.ServiceDone)
	if err != nil {
		return err
	}

	booking, err := s.bookings.GetByID(ctx, request.BookingID)
	if err != nil {
		return err
	}
	if request.Type == domain.ServiceFood {
		booking.FoodReq = false
	} else {
		booking.CleanReq = false
	}
	if err := s.bookings.Update(ctx, booking); err != nil {
		return err
	}

	s.logger.Info("service request completed", zap.String("request_id", requestID))
	return nil
}
