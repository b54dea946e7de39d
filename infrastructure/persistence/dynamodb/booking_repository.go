package dynamodb

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/persistence/schema"
	appErrors "letstayinn-backend/pkg/errors"
)

// BookingRepository persists bookings as two copies written together: the
// canonical item under Booking#<id> and a per-user view under the guest's
// partition. Every write touches both so the copies never diverge.
type BookingRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewBookingRepository creates a booking repository.
func NewBookingRepository(store *Store, logger *zap.Logger) *BookingRepository {
	return &BookingRepository{
		store:  store,
		logger: logger.Named("booking-repo"),
	}
}

// Save creates both copies in one transaction, each requiring absence.
func (r *BookingRepository) Save(ctx context.Context, booking domain.Booking) error {
	meta, err := r.store.PutLegIf(schema.EncodeBookingMeta(booking), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "saving booking")
	}
	view, err := r.store.PutLegIf(schema.EncodeBookingUserView(booking), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "saving booking")
	}

	if err := r.store.TransactWrite(ctx, meta, view); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewConflictError("booking already exists").WithCode("DUPLICATE_BOOKING")
		}
		return storageError(err, "saving booking")
	}

	r.logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.Int("room_number", booking.RoomNum))
	return nil
}

// GetByID reads the canonical copy.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (domain.Booking, error) {
	var item schema.BookingItem
	if err := r.store.Get(ctx, schema.BookingPK(id), schema.BookingMetaSK, &item); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Booking{}, appErrors.NewNotFoundError("booking")
		}
		return domain.Booking{}, storageError(err, "reading booking")
	}
	booking, err := schema.DecodeBooking(item)
	if err != nil {
		return domain.Booking{}, appErrors.NewCorruptRecordError("booking", err)
	}
	return booking, nil
}

// Update rewrites both copies in one transaction, each guarded on existence.
// If either copy is missing the whole write aborts.
func (r *BookingRepository) Update(ctx context.Context, booking domain.Booking) error {
	meta, err := r.store.PutLegIf(schema.EncodeBookingMeta(booking), conditionItemExists, nil, nil)
	if err != nil {
		return storageError(err, "updating booking")
	}
	view, err := r.store.PutLegIf(schema.EncodeBookingUserView(booking), conditionItemExists, nil, nil)
	if err != nil {
		return storageError(err, "updating booking")
	}

	if err := r.store.TransactWrite(ctx, meta, view); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewNotFoundError("booking")
		}
		return storageError(err, "updating booking")
	}
	return nil
}

// ListActiveByUser returns a guest's bookings still in Booked status.
func (r *BookingRepository) ListActiveByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	filter := expression.Name("status").Equal(expression.Value(string(domain.BookingBooked)))
	raw, err := r.store.QueryPrefix(ctx, schema.UserPK(userID), schema.UserBookingSKPrefix, &filter)
	if err != nil {
		return nil, storageError(err, "listing bookings")
	}
	return decodeAll(raw, "booking", schema.DecodeBooking)
}

// ScanExpired returns bookings past checkout still marked Booked. Full-table
// filter scan; only the maintenance sweep calls it. Filtering on the META
// sort key yields one record per booking rather than one per copy.
func (r *BookingRepository) ScanExpired(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	filter := expression.Name(schema.AttrSK).Equal(expression.Value(schema.BookingMetaSK)).
		And(expression.Name("status").Equal(expression.Value(string(domain.BookingBooked)))).
		And(expression.Name("check_out").LessThan(expression.Value(now.Format(schema.DateFormat))))

	raw, err := r.store.ScanFilter(ctx, filter)
	if err != nil {
		return nil, storageError(err, "scanning expired bookings")
	}
	return decodeAll(raw, "booking", schema.DecodeBooking)
}

// MarkCompleted flips both copies to Completed in one transaction guarded by
// status still being Booked. A booking cancelled or completed in the
// meantime fails the guard and surfaces as Conflict; the sweep treats that
// as already handled.
func (r *BookingRepository) MarkCompleted(ctx context.Context, bookingID, userID string) error {
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":completed": &types.AttributeValueMemberS{Value: string(domain.BookingCompleted)},
		":booked":    &types.AttributeValueMemberS{Value: string(domain.BookingBooked)},
	}
	const updateExpr = "SET #status = :completed"
	const condition = "#status = :booked"

	meta := r.store.UpdateLeg(schema.BookingPK(bookingID), schema.BookingMetaSK, updateExpr, condition, names, values)
	view := r.store.UpdateLeg(schema.UserPK(userID), schema.UserBookingSK(bookingID), updateExpr, condition, names, values)

	if err := r.store.TransactWrite(ctx, meta, view); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewConflictError("booking is not in Booked status").WithCode("NOT_BOOKED")
		}
		return storageError(err, "completing booking")
	}

	r.logger.Info("booking completed", zap.String("booking_id", bookingID))
	return nil
}
