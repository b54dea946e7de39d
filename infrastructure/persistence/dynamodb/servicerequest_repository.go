package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/persistence/schema"
	appErrors "letstayinn-backend/pkg/errors"
)

// ServiceRequestRepository persists service requests with up to three fan-out
// copies: the global queue item, the requester's view and, once assigned, the
// assignee's view. Status lives inside every sort key, so a status change is
// a delete+recreate of every copy in one transaction.
type ServiceRequestRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewServiceRequestRepository creates a service request repository.
func NewServiceRequestRepository(store *Store, logger *zap.Logger) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		store:  store,
		logger: logger.Named("service-request-repo"),
	}
}

// Save creates the queue copy and the requester's view in one transaction,
// both requiring absence.
func (r *ServiceRequestRepository) Save(ctx context.Context, req domain.ServiceRequest) error {
	queue, err := r.store.PutLegIf(schema.EncodeServiceQueue(req), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "saving service request")
	}
	made, err := r.store.PutLegIf(schema.EncodeServiceMade(req), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "saving service request")
	}

	if err := r.store.TransactWrite(ctx, queue, made); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return appErrors.NewConflictError("service request already exists").WithCode("DUPLICATE_REQUEST")
		}
		return storageError(err, "saving service request")
	}

	r.logger.Info("service request created",
		zap.String("request_id", req.ID),
		zap.String("type", string(req.Type)))
	return nil
}

// GetPending reads a request from the pending queue.
func (r *ServiceRequestRepository) GetPending(ctx context.Context, requestID string) (domain.ServiceRequest, error) {
	var item schema.ServiceRequestItem
	err := r.store.Get(ctx, schema.ServiceRequestsPK, schema.ServiceQueueSK(domain.ServicePending, requestID), &item)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.ServiceRequest{}, appErrors.NewNotFoundError("pending service request")
		}
		return domain.ServiceRequest{}, storageError(err, "reading service request")
	}
	req, err := schema.DecodeServiceRequest(item)
	if err != nil {
		return domain.ServiceRequest{}, appErrors.NewCorruptRecordError("service request", err)
	}
	return req, nil
}

// ListPending returns the global pending queue.
func (r *ServiceRequestRepository) ListPending(ctx context.Context) ([]domain.ServiceRequest, error) {
	raw, err := r.store.QueryPrefix(ctx, schema.ServiceRequestsPK, schema.ServiceQueueSKPrefix(domain.ServicePending), nil)
	if err != nil {
		return nil, storageError(err, "listing pending service requests")
	}
	return decodeAll(raw, "service request", schema.DecodeServiceRequest)
}

// ListRequestedBy returns every request a guest has made, in any status.
func (r *ServiceRequestRepository) ListRequestedBy(ctx context.Context, userID string) ([]domain.ServiceRequest, error) {
	raw, err := r.store.QueryPrefix(ctx, schema.UserPK(userID), "Made#", nil)
	if err != nil {
		return nil, storageError(err, "listing service requests")
	}
	return decodeAll(raw, "service request", schema.DecodeServiceRequest)
}

// ListAssigned returns every request assigned to an employee, in any status.
func (r *ServiceRequestRepository) ListAssigned(ctx context.Context, employeeID string) ([]domain.ServiceRequest, error) {
	raw, err := r.store.QueryPrefix(ctx, schema.UserPK(employeeID), "Service#", nil)
	if err != nil {
		return nil, storageError(err, "listing assigned service requests")
	}
	return decodeAll(raw, "service request", schema.DecodeServiceRequest)
}

// Assign hands a pending request to an employee as a three-leg transaction:
// rewrite the queue copy guarded by is_assigned still being false, mirror the
// requester's view guarded on existence, and create the assignee's view
// guarded on absence. The first guard is the only concurrency control for
// double assignment; its failure reports AlreadyAssigned, any other guard
// failure reports AssignmentFailed.
func (r *ServiceRequestRepository) Assign(ctx context.Context, requestID, employeeID string) error {
	req, err := r.GetPending(ctx, requestID)
	if err != nil {
		return err
	}
	if req.IsAssigned {
		return appErrors.NewConflictError("service request already assigned").WithCode("ALREADY_ASSIGNED")
	}

	req.IsAssigned = true
	req.AssignedTo = &employeeID

	notAssigned := map[string]types.AttributeValue{
		":false": &types.AttributeValueMemberBOOL{Value: false},
	}

	queue, err := r.store.PutLegIf(schema.EncodeServiceQueue(req),
		"attribute_exists(pk) AND is_assigned = :false", nil, notAssigned)
	if err != nil {
		return storageError(err, "assigning service request")
	}
	made, err := r.store.PutLegIf(schema.EncodeServiceMade(req), conditionItemExists, nil, nil)
	if err != nil {
		return storageError(err, "assigning service request")
	}
	assigned, err := r.store.PutLegIf(schema.EncodeServiceAssigned(req, employeeID), conditionItemAbsent, nil, nil)
	if err != nil {
		return storageError(err, "assigning service request")
	}

	if err := r.store.TransactWrite(ctx, queue, made, assigned); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) {
			if txErr.ConditionFailedAt(0) {
				return appErrors.NewConflictError("service request already assigned").WithCode("ALREADY_ASSIGNED")
			}
			if txErr.AnyConditionFailed() {
				return appErrors.NewConflictError("service request assignment failed").WithCode("ASSIGNMENT_FAILED")
			}
		}
		return storageError(err, "assigning service request")
	}

	r.logger.Info("service request assigned",
		zap.String("request_id", requestID),
		zap.String("employee_id", employeeID))
	return nil
}

// UpdateStatus moves a pending request to a new status by deleting every
// old-keyed copy and recreating it under the new key, all in one
// transaction. The read and the transaction are not atomic: a concurrent
// writer that moves the request first makes the guarded deletes fail, the
// whole transaction aborts, and the caller may retry from a fresh read.
// Returns the request in its new status.
func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, requestID string, newStatus domain.ServiceStatus) (domain.ServiceRequest, error) {
	req, err := r.GetPending(ctx, requestID)
	if err != nil {
		return domain.ServiceRequest{}, err
	}
	oldStatus := req.Status
	req.Status = newStatus

	legs := make([]types.TransactWriteItem, 0, 6)

	legs = append(legs, r.store.DeleteLegIf(
		schema.ServiceRequestsPK, schema.ServiceQueueSK(oldStatus, requestID), conditionItemExists, nil, nil))
	queue, err := r.store.PutLegIf(schema.EncodeServiceQueue(req), conditionItemAbsent, nil, nil)
	if err != nil {
		return domain.ServiceRequest{}, storageError(err, "updating service request status")
	}
	legs = append(legs, queue)

	legs = append(legs, r.store.DeleteLegIf(
		schema.UserPK(req.UserID), schema.ServiceMadeSK(oldStatus, requestID), conditionItemExists, nil, nil))
	made, err := r.store.PutLegIf(schema.EncodeServiceMade(req), conditionItemAbsent, nil, nil)
	if err != nil {
		return domain.ServiceRequest{}, storageError(err, "updating service request status")
	}
	legs = append(legs, made)

	if req.IsAssigned && req.AssignedTo != nil {
		legs = append(legs, r.store.DeleteLegIf(
			schema.UserPK(*req.AssignedTo), schema.ServiceQueueSK(oldStatus, requestID), conditionItemExists, nil, nil))
		assigned, err := r.store.PutLegIf(schema.EncodeServiceAssigned(req, *req.AssignedTo), conditionItemAbsent, nil, nil)
		if err != nil {
			return domain.ServiceRequest{}, storageError(err, "updating service request status")
		}
		legs = append(legs, assigned)
	}

	if err := r.store.TransactWrite(ctx, legs...); err != nil {
		var txErr *TransactionCanceledError
		if errors.As(err, &txErr) && txErr.AnyConditionFailed() {
			return domain.ServiceRequest{}, appErrors.NewConflictError("service request was modified concurrently").WithCode("NOT_PENDING")
		}
		return domain.ServiceRequest{}, storageError(err, "updating service request status")
	}

	r.logger.Info("service request status updated",
		zap.String("request_id", requestID),
		zap.String("status", string(newStatus)))
	return req, nil
}

// DeleteByBooking removes every copy of every request tied to a booking.
// Used by the cancellation cleanup consumer; deletes are unguarded so a
// rerun of the same message is a no-op.
func (r *ServiceRequestRepository) DeleteByBooking(ctx context.Context, bookingID string) error {
	filter := expression.Name("booking_id").Equal(expression.Value(bookingID))
	raw, err := r.store.QueryPrefix(ctx, schema.ServiceRequestsPK, "Service#", &filter)
	if err != nil {
		return storageError(err, "listing service requests for booking")
	}
	reqs, err := decodeAll(raw, "service request", schema.DecodeServiceRequest)
	if err != nil {
		return err
	}

	for _, req := range reqs {
		legs := []types.TransactWriteItem{
			r.store.DeleteLeg(schema.ServiceRequestsPK, schema.ServiceQueueSK(req.Status, req.ID)),
			r.store.DeleteLeg(schema.UserPK(req.UserID), schema.ServiceMadeSK(req.Status, req.ID)),
		}
		if req.IsAssigned && req.AssignedTo != nil {
			legs = append(legs, r.store.DeleteLeg(schema.UserPK(*req.AssignedTo), schema.ServiceQueueSK(req.Status, req.ID)))
		}
		if err := r.store.TransactWrite(ctx, legs...); err != nil {
			return storageError(err, "deleting service requests for booking")
		}
	}

	if len(reqs) > 0 {
		r.logger.Info("service requests deleted for booking",
			zap.String("booking_id", bookingID),
			zap.Int("count", len(reqs)))
	}
	return nil
}
