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

// BookingService handles the booking lifecycle and the room availability it
// drives.
type BookingService struct {
	bookings  ports.BookingRepository
	rooms     ports.RoomRepository
	publisher ports.BookingEventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a booking service.
func NewBookingService(bookings ports.BookingRepository, rooms ports.RoomRepository, publisher ports.BookingEventPublisher, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookings:  bookings,
		rooms:     rooms,
		publisher: publisher,
		logger:    logger.Named("booking-service"),
	}
}

// BookRoom books an available room for a guest. The room is flipped to
// unavailable before the booking is written; room availability is the single
// source of truth for double-booking prevention.
func (s *BookingService) BookRoom(ctx context.Context, userID string, roomNumber int, checkIn, checkOut time.Time) (domain.Booking, error) {
	if !checkOut.After(checkIn) {
		return domain.Booking{}, appErrors.NewValidationError("check-out must be after check-in")
	}

	room, err := s.rooms.GetByNumber(ctx, roomNumber)
	if err != nil {
		return domain.Booking{}, err
	}
	if !room.IsAvailable {
		return domain.Booking{}, appErrors.NewConflictError("room already booked").WithCode("ROOM_UNAVAILABLE")
	}

	booking := domain.Booking{
		ID:       uuid.NewString(),
		UserID:   userID,
		RoomID:   room.ID,
		RoomNum:  roomNumber,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   domain.BookingBooked,
	}

	if err := s.rooms.UpdateAvailability(ctx, roomNumber, false); err != nil {
		return domain.Booking{}, err
	}
	if err := s.bookings.Save(ctx, booking); err != nil {
		// compensate the availability flip
		if rollbackErr := s.rooms.UpdateAvailability(ctx, roomNumber, true); rollbackErr != nil {
			s.logger.Error("room availability rollback failed",
				zap.Int("room_number", roomNumber), zap.Error(rollbackErr))
		}
		return domain.Booking{}, err
	}

	s.logger.Info("room booked",
		zap.String("booking_id", booking.ID),
		zap.Int("room_number", roomNumber))
	return booking, nil
}

// Cancel cancels a booking, frees its room, and, when a food or cleaning
// request is still outstanding, publishes the cancellation so the downstream
// consumer removes those requests.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID string) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return appErrors.NewForbiddenError("booking belongs to another guest")
	}
	if booking.Status == domain.BookingCancelled {
		return appErrors.NewConflictError("booking already cancelled").WithCode("ALREADY_CANCELLED")
	}

	booking.Status = domain.BookingCancelled
	if err := s.rooms.UpdateAvailability(ctx, booking.RoomNum, true); err != nil {
		return err
	}
	if err := s.bookings.Update(ctx, booking); err != nil {
		return err
	}

	if booking.FoodReq || booking.CleanReq {
		event := ports.BookingEvent{
			BookingID: booking.ID,
			FoodReq:   booking.FoodReq,
			CleanReq:  booking.CleanReq,
			Timestamp: time.Now().UTC(),
		}
		if err := s.publisher.PublishCancelled(ctx, event); err != nil {
			// cancellation already committed; a lost event only delays cleanup
			s.logger.Error("cancellation event publish failed",
				zap.String("booking_id", booking.ID), zap.Error(err))
		}
	}

	s.logger.Info("booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

// ListActiveByUser returns a guest's bookings still in Booked status.
func (s *BookingService) ListActiveByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListActiveByUser(ctx, userID)
}

// CompleteExpired sweeps bookings past checkout still marked Booked and
// flips them to Completed. A booking another run already handled fails its
// status guard and is skipped. Returns how many bookings this run completed.
func (s *BookingService) CompleteExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.bookings.ScanExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, booking := range expired {
		err := s.bookings.MarkCompleted(ctx, booking.ID, booking.UserID)
		if err != nil {
			if appErrors.IsConflict(err) {
				s.logger.Debug("booking already handled", zap.String("booking_id", booking.ID))
				continue
			}
			return completed, err
		}
		completed++
	}
	return completed, nil
}
