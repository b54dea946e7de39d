package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/infrastructure/persistence/schema"
	appErrors "letstayinn-backend/pkg/errors"
)

// FeedbackRepository persists feedback entries. One partition, no fan-out.
type FeedbackRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewFeedbackRepository creates a feedback repository.
func NewFeedbackRepository(store *Store, logger *zap.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		store:  store,
		logger: logger.Named("feedback-repo"),
	}
}

// Save stores a feedback entry.
func (r *FeedbackRepository) Save(ctx context.Context, feedback domain.Feedback) error {
	if err := r.store.Put(ctx, schema.EncodeFeedback(feedback)); err != nil {
		return storageError(err, "saving feedback")
	}
	return nil
}

// GetAll returns every feedback entry.
func (r *FeedbackRepository) GetAll(ctx context.Context) ([]domain.Feedback, error) {
	raw, err := r.store.QueryPrefix(ctx, schema.FeedbacksPK, schema.FeedbackSKPrefix, nil)
	if err != nil {
		return nil, storageError(err, "listing feedback")
	}
	return decodeAll(raw, "feedback", schema.DecodeFeedback)
}

// ListByUser returns the feedback a guest has left.
func (r *FeedbackRepository) ListByUser(ctx context.Context, userID string) ([]domain.Feedback, error) {
	filter := expression.Name("user_id").Equal(expression.Value(userID))
	raw, err := r.store.QueryPrefix(ctx, schema.FeedbacksPK, schema.FeedbackSKPrefix, &filter)
	if err != nil {
		return nil, storageError(err, "listing feedback")
	}
	return decodeAll(raw, "feedback", schema.DecodeFeedback)
}

// Delete removes a feedback entry, guarded on existence.
func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	err := r.store.DeleteIf(ctx, schema.FeedbacksPK, schema.FeedbackSK(id), conditionItemExists, nil, nil)
	if err != nil {
		if errors.Is(err, ErrPreconditionFailed) {
			return appErrors.NewNotFoundError("feedback")
		}
		return storageError(err, "deleting feedback")
	}
	return nil
}
