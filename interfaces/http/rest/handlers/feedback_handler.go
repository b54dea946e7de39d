package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"letstayinn-backend/application/services"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
	"letstayinn-backend/pkg/utils"
)

// FeedbackHandler handles guest feedback.
type FeedbackHandler struct {
	feedback *services.FeedbackService
	errors   *appErrors.ErrorHandler
	logger   *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedback *services.FeedbackService, errors *appErrors.ErrorHandler, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		errors:   errors,
		logger:   logger,
	}
}

// CreateFeedbackRequest represents the request body for leaving feedback
type CreateFeedbackRequest struct {
	Message string `json:"message" validate:"required,min=1,max=1000"`
	Rating  *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// Create handles POST /feedbacks
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	var req CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.feedback.Create(r.Context(), user.UserID, user.Name, req.Message, req.Rating)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toFeedbackResponse(entry))
}

// List handles GET /feedbacks
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedback.ListAll(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toFeedbackResponses(entries))
}

// ListOwn handles GET /feedbacks/mine
func (h *FeedbackHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	entries, err := h.feedback.ListOwn(r.Context(), user.UserID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toFeedbackResponses(entries))
}

// Delete handles DELETE /feedbacks/{id}
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.errors.Handle(w, r, appErrors.NewValidationError("feedback id is required"))
		return
	}

	if err := h.feedback.Delete(r.Context(), id); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "feedback deleted"})
}
