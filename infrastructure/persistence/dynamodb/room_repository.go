package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/persistence/schema"
	appErrors "letstayinn-backend/pkg/errors"
)

// RoomRepository persists rooms. All rooms live in one partition keyed by
// room number; availability is a single attribute with no fan-out copies.
type RoomRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewRoomRepository creates a room repository.
func NewRoomRepository(store *Store, logger *zap.Logger) *RoomRepository {
	return &RoomRepository{
		store:  store,
		logger: logger.Named("room-repo"),
	}
}

// Add creates a room, failing if the number is already taken.
func (r *RoomRepository) Add(ctx context.Context, room domain.Room) error {
	err := r.store.PutIf(ctx, schema.EncodeRoom(room), conditionItemAbsent, nil, nil)
	if err != nil {
		if errors.Is(err, ErrPreconditionFailed) {
			return appErrors.NewConflictError(fmt.Sprintf("room %d already exists", room.Number)).WithCode("DUPLICATE_ROOM")
		}
		return storageError(err, "adding room")
	}
	r.logger.Info("room added", zap.Int("room_number", room.Number))
	return nil
}

// GetByNumber reads a room.
func (r *RoomRepository) GetByNumber(ctx context.Context, number int) (domain.Room, error) {
	var item schema.RoomItem
	if err := r.store.Get(ctx, schema.RoomsPK, schema.RoomSK(number), &item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Room{}, appErrors.NewNotFoundError("room")
		}
		return domain.Room{}, storageError(err, "reading room")
	}
	room, err := schema.DecodeRoom(item)
	if err != nil {
		return domain.Room{}, appErrors.NewCorruptRecordError("room", err)
	}
	return room, nil
}

// Update rewrites a room's attributes, guarded on the room existing.
func (r *RoomRepository) Update(ctx context.Context, room domain.Room) error {
	err := r.store.PutIf(ctx, schema.EncodeRoom(room), conditionItemExists, nil, nil)
	if err != nil {
		if errors.Is(err, ErrPreconditionFailed) {
			return appErrors.NewNotFoundError("room")
		}
		return storageError(err, "updating room")
	}
	return nil
}

// UpdateAvailability toggles the availability flag, guarded on the room
// existing.
func (r *RoomRepository) UpdateAvailability(ctx context.Context, number int, available bool) error {
	update := expression.Set(expression.Name("is_available"), expression.Value(available))
	cond := expression.AttributeExists(expression.Name(schema.AttrPK))

	err := r.store.Update(ctx, schema.RoomsPK, schema.RoomSK(number), update, &cond)
	if err != nil {
		if errors.Is(err, ErrPreconditionFailed) {
			return appErrors.NewNotFoundError("room")
		}
		return storageError(err, "updating room availability")
	}
	return nil
}

// ListAll returns every room.
func (r *RoomRepository) ListAll(ctx context.Context) ([]domain.Room, error) {
	raw, err := r.store.QueryPrefix(ctx, schema.RoomsPK, schema.RoomSKPrefix, nil)
	if err != nil {
		return nil, storageError(err, "listing rooms")
	}
	return decodeAll(raw, "room", schema.DecodeRoom)
}

// ListAvailable returns rooms currently open for booking.
func (r *RoomRepository) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	filter := expression.Name("is_available").Equal(expression.Value(true))
	raw, err := r.store.QueryPrefix(ctx, schema.RoomsPK, schema.RoomSKPrefix, &filter)
	if err != nil {
		return nil, storageError(err, "listing available rooms")
	}
	return decodeAll(raw, "room", schema.DecodeRoom)
}

// Delete removes a room, guarded on existence. Whether the room may be
// deleted while booked is the caller's policy.
func (r *RoomRepository) Delete(ctx context.Context, number int) error {
	err := r.store.DeleteIf(ctx, schema.RoomsPK, schema.RoomSK(number), conditionItemExists, nil, nil)
	if err != nil {
		if errors.Is(err, ErrPreconditionFailed) {
			return appErrors.NewNotFoundError("room")
		}
		return storageError(err, "deleting room")
	}
	r.logger.Info("room deleted", zap.Int("room_number", number))
	return nil
}
