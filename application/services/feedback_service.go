package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/domain"
)

// FeedbackService handles guest feedback.
type FeedbackService struct {
	feedback ports.FeedbackRepository
	logger   *zap.Logger
}

// NewFeedbackService creates a feedback service.
func NewFeedbackService(feedback ports.FeedbackRepository, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		logger:   logger.Named("feedback-service"),
	}
}

// Create stores a feedback entry on behalf of the authenticated guest.
func (s *FeedbackService) Create(ctx context.Context, userID, userName, message string, rating *int) (domain.Feedback, error) {
	entry := domain.Feedback{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Message:   message,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.feedback.Save(ctx, entry); err != nil {
		return domain.Feedback{}, err
	}
	return entry, nil
}

// ListAll returns every feedback entry.
func (s *FeedbackService) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.GetAll(ctx)
}

// ListOwn returns the feedback the guest has left.
func (s *FeedbackService) ListOwn(ctx context.Context, userID string) ([]domain.Feedback, error) {
	return s.feedback.ListByUser(ctx, userID)
}

// Delete removes a feedback entry.
func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	return s.feedback.Delete(ctx, id)
}
