package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/domain"
	appErrors "letstayinn-backend/pkg/errors"
)

// RoomService handles room administration and listings.
type RoomService struct {
	rooms  ports.RoomRepository
	logger *zap.Logger
}

// NewRoomService creates a room service.
func NewRoomService(rooms ports.RoomRepository, logger *zap.Logger) *RoomService {
	return &RoomService{
		rooms:  rooms,
		logger: logger.Named("room-service"),
	}
}

// Add creates a room. New rooms start available.
func (s *RoomService) Add(ctx context.Context, number int, roomType domain.RoomType, price int, description string) (domain.Room, error) {
	if number <= 0 {
		return domain.Room{}, appErrors.NewValidationError("room number must be positive")
	}
	if price < 0 {
		return domain.Room{}, appErrors.NewValidationError("price must not be negative")
	}

	room := domain.Room{
		ID:          uuid.NewString(),
		Number:      number,
		Type:        roomType,
		Price:       price,
		IsAvailable: true,
		Description: description,
	}
	if err := s.rooms.Add(ctx, room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

// Get reads a room.
func (s *RoomService) Get(ctx context.Context, number int) (domain.Room, error) {
	return s.rooms.GetByNumber(ctx, number)
}

// Update rewrites a room's price, type and description. Number and
// availability are not updatable here.
func (s *RoomService) Update(ctx context.Context, number int, roomType domain.RoomType, price int, description string) (domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return domain.Room{}, err
	}
	room.Type = roomType
	room.Price = price
	room.Description = description
	if err := s.rooms.Update(ctx, room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

// ListAll returns every room.
func (s *RoomService) ListAll(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListAll(ctx)
}

// ListAvailable returns rooms open for booking.
func (s *RoomService) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListAvailable(ctx)
}

// Delete removes a room. A room with an active booking is unavailable and
// must not be deleted; that check lives here, not in the repository.
func (s *RoomService) Delete(ctx context.Context, number int) error {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if !room.IsAvailable {
		return appErrors.NewConflictError("room has an active booking").WithCode("ROOM_IN_USE")
	}
	return s.rooms.Delete(ctx, number)
}
