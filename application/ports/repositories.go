// Package ports declares the persistence and messaging interfaces the
// application services depend on. Each has exactly one production
// implementation; tests substitute in-memory fakes.
package ports

import (
	"context"
	"time"

	"letstayinn-backend/domain"
)

// UserRepository persists guest accounts.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// EmployeeRepository persists staff accounts and the roster.
type EmployeeRepository interface {
	Create(ctx context.Context, employee domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, employee domain.User) error
	Delete(ctx context.Context, employee domain.User) error
}

// RoomRepository persists rooms.
type RoomRepository interface {
	Add(ctx context.Context, room domain.Room) error
	GetByNumber(ctx context.Context, number int) (domain.Room, error)
	Update(ctx context.Context, room domain.Room) error
	UpdateAvailability(ctx context.Context, number int, available bool) error
	ListAll(ctx context.Context) ([]domain.Room, error)
	ListAvailable(ctx context.Context) ([]domain.Room, error)
	Delete(ctx context.Context, number int) error
}

// BookingRepository persists bookings and their per-user views.
type BookingRepository interface {
	Save(ctx context.Context, booking domain.Booking) error
	GetByID(ctx context.Context, id string) (domain.Booking, error)
	Update(ctx context.Context, booking domain.Booking) error
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ScanExpired(ctx context.Context, now time.Time) ([]domain.Booking, error)
	MarkCompleted(ctx context.Context, bookingID, userID string) error
}

// ServiceRequestRepository persists service requests and their fan-out views.
type ServiceRequestRepository interface {
	Save(ctx context.Context, req domain.ServiceRequest) error
	GetPending(ctx context.Context, requestID string) (domain.ServiceRequest, error)
	ListPending(ctx context.Context) ([]domain.ServiceRequest, error)
	ListRequestedBy(ctx context.Context, userID string) ([]domain.ServiceRequest, error)
	ListAssigned(ctx context.Context, employeeID string) ([]domain.ServiceRequest, error)
	Assign(ctx context.Context, requestID, employeeID string) error
	UpdateStatus(ctx context.Context, requestID string, newStatus domain.ServiceStatus) (domain.ServiceRequest, error)
	DeleteByBooking(ctx context.Context, bookingID string) error
}

// FeedbackRepository persists feedback entries.
type FeedbackRepository interface {
	Save(ctx context.Context, feedback domain.Feedback) error
	GetAll(ctx context.Context) ([]domain.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Feedback, error)
	Delete(ctx context.Context, id string) error
}

// BookingEvent is the cancellation message published for downstream cleanup.
type BookingEvent struct {
	Event     string    `json:"event_type"`
	BookingID string    `json:"booking_id"`
	FoodReq   bool      `json:"food_req"`
	CleanReq  bool      `json:"clean_req"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingEventPublisher emits booking lifecycle events to the side-channel
// queue.
type BookingEventPublisher interface {
	PublishCancelled(ctx context.Context, event BookingEvent) error
}
