package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"letstayinn-backend/application/services"
	"letstayinn-backend/domain"
	appErrors "letstayinn-backend/pkg/errors"
	"letstayinn-backend/pkg/utils"
)

// RoomHandler handles room management and listings.
type RoomHandler struct {
	rooms  *services.RoomService
	errors *appErrors.ErrorHandler
	logger *zap.Logger
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(rooms *services.RoomService, errors *appErrors.ErrorHandler, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		rooms:  rooms,
		errors: errors,
		logger: logger,
	}
}

// CreateRoomRequest represents the request body for adding a room
type CreateRoomRequest struct {
	Number      int    `json:"room_num" validate:"required,gte=1"`
	Type        string `json:"room_type" validate:"required,oneof=Standard Deluxe Suite Executive"`
	Price       int    `json:"price" validate:"gte=0"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateRoomRequest represents the request body for updating a room
type UpdateRoomRequest struct {
	Type        string `json:"room_type" validate:"required,oneof=Standard Deluxe Suite Executive"`
	Price       int    `json:"price" validate:"gte=0"`
	Description string `json:"description" validate:"max=500"`
}

// Create handles POST /rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	room, err := h.rooms.Add(r.Context(), req.Number, roomType, req.Price, req.Description)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toRoomResponse(room))
}

// Update handles PUT /rooms/{number}
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	number, ok := h.roomNumber(w, r)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	room, err := h.rooms.Update(r.Context(), number, roomType, req.Price, req.Description)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toRoomResponse(room))
}

// Delete handles DELETE /rooms/{number}
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	number, ok := h.roomNumber(w, r)
	if !ok {
		return
	}

	if err := h.rooms.Delete(r.Context(), number); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "room deleted"})
}

// Get handles GET /rooms/{number}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	number, ok := h.roomNumber(w, r)
	if !ok {
		return
	}

	room, err := h.rooms.Get(r.Context(), number)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toRoomResponse(room))
}

// List handles GET /rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListAll(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toRoomResponses(rooms))
}

// ListAvailable handles GET /rooms/available
func (h *RoomHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListAvailable(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toRoomResponses(rooms))
}

func (h *RoomHandler) roomNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid room number"))
		return 0, false
	}
	return number, true
}
