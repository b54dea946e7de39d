package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"letstayinn-backend/application/services"
	"letstayinn-backend/domain"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
	"letstayinn-backend/pkg/utils"
)

// ServiceRequestHandler handles in-room service requests.
type ServiceRequestHandler struct {
	requests *services.ServiceRequestService
	errors   *appErrors.ErrorHandler
	logger   *zap.Logger
}

// NewServiceRequestHandler creates a new service request handler.
func NewServiceRequestHandler(requests *services.ServiceRequestService, errors *appErrors.ErrorHandler, logger *zap.Logger) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		requests: requests,
		errors:   errors,
		logger:   logger,
	}
}

// CreateServiceRequestRequest represents the request body for raising a
// service request
type CreateServiceRequestRequest struct {
	RoomNum int    `json:"room_num" validate:"required,gte=1"`
	Type    string `json:"service_type" validate:"required,oneof=Cleaning Food"`
	Details string `json:"details" validate:"max=500"`
}

// AssignRequest represents the request body for assigning a request to an
// employee
type AssignRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

// CompleteRequest represents the request body for closing a request
type CompleteRequest struct {
	Status string `json:"status" validate:"required,oneof=Done"`
}

// Create handles POST /service-requests
func (h *ServiceRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	var req CreateServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	serviceType, err := domain.ParseServiceType(req.Type)
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	request, err := h.requests.Create(r.Context(), user.UserID, req.RoomNum, serviceType, req.Details)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toServiceRequestResponse(request))
}

// ListOwn handles GET /service-requests
func (h *ServiceRequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	requests, err := h.requests.ListOwn(r.Context(), user.UserID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toServiceRequestResponses(requests))
}

// ListPending handles GET /service-requests/pending
func (h *ServiceRequestHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requests.ListPending(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toServiceRequestResponses(requests))
}

// ListAssigned handles GET /service-requests/assigned
func (h *ServiceRequestHandler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	requests, err := h.requests.ListAssigned(r.Context(), user.UserID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toServiceRequestResponses(requests))
}

// Assign handles POST /service-requests/{id}/assign
func (h *ServiceRequestHandler) Assign(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		h.errors.Handle(w, r, appErrors.NewValidationError("request id is required"))
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	if err := h.requests.Assign(r.Context(), requestID, req.EmployeeID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "request assigned"})
}

// Complete handles POST /service-requests/{id}/complete
func (h *ServiceRequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		h.errors.Handle(w, r, appErrors.NewValidationError("request id is required"))
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	status, err := domain.ParseServiceStatus(req.Status)
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	if err := h.requests.Complete(r.Context(), requestID, status); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "request completed"})
}
