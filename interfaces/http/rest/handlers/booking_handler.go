package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"letstayinn-backend/application/services"
	"letstayinn-backend/infrastructure/persistence/schema"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
	"letstayinn-backend/pkg/utils"
)

// BookingHandler handles guest booking requests.
type BookingHandler struct {
	bookings *services.BookingService
	errors   *appErrors.ErrorHandler
	logger   *zap.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookings *services.BookingService, errors *appErrors.ErrorHandler, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		errors:   errors,
		logger:   logger,
	}
}

// CreateBookingRequest represents the request body for booking a room.
// Dates use YYYY-MM-DD.
type CreateBookingRequest struct {
	RoomNum  int    `json:"room_num" validate:"required,gte=1"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

// Create handles POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	checkIn, err := time.Parse(schema.DateFormat, req.CheckIn)
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("check_in must be YYYY-MM-DD"))
		return
	}
	checkOut, err := time.Parse(schema.DateFormat, req.CheckOut)
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("check_out must be YYYY-MM-DD"))
		return
	}

	booking, err := h.bookings.BookRoom(r.Context(), user.UserID, req.RoomNum, checkIn, checkOut)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toBookingResponse(booking))
}

// Cancel handles POST /bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		h.errors.Handle(w, r, appErrors.NewValidationError("booking id is required"))
		return
	}

	if err := h.bookings.Cancel(r.Context(), bookingID, user.UserID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "booking cancelled"})
}

// ListOwn handles GET /bookings
func (h *BookingHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	bookings, err := h.bookings.ListActiveByUser(r.Context(), user.UserID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toBookingResponses(bookings))
}
