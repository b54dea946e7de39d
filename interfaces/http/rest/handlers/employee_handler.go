package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"letstayinn-backend/application/services"
	"letstayinn-backend/domain"
	appErrors "letstayinn-backend/pkg/errors"
	"letstayinn-backend/pkg/utils"
)

// EmployeeHandler handles staff roster management.
type EmployeeHandler struct {
	employees *services.EmployeeService
	errors    *appErrors.ErrorHandler
	logger    *zap.Logger
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employees *services.EmployeeService, errors *appErrors.ErrorHandler, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employees: employees,
		errors:    errors,
		logger:    logger,
	}
}

// CreateEmployeeRequest represents the request body for onboarding staff
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required,oneof=KitchenStaff CleaningStaff Manager"`
}

// UpdateAvailabilityRequest represents the request body for toggling an
// employee's availability
type UpdateAvailabilityRequest struct {
	Available *bool `json:"is_available" validate:"required"`
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	employee, err := h.employees.Create(r.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(employee))
}

// List handles GET /employees
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	out := make([]UserResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toUserResponse(e))
	}
	respondJSON(w, http.StatusOK, out)
}

// UpdateAvailability handles PUT /employees/{id}/availability
func (h *EmployeeHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		h.errors.Handle(w, r, appErrors.NewValidationError("employee id is required"))
		return
	}

	var req UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	if err := h.employees.UpdateAvailability(r.Context(), employeeID, *req.Available); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "availability updated"})
}

// Delete handles DELETE /employees/{id}
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		h.errors.Handle(w, r, appErrors.NewValidationError("employee id is required"))
		return
	}

	if err := h.employees.Delete(r.Context(), employeeID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "employee removed"})
}
