package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"letstayinn-backend/application/services"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
	"letstayinn-backend/pkg/utils"
)

// AuthHandler handles signup, login and profile requests.
type AuthHandler struct {
	users  *services.UserService
	errors *appErrors.ErrorHandler
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users *services.UserService, errors *appErrors.ErrorHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		errors: errors,
		logger: logger,
	}
}

// SignupRequest represents the request body for creating a guest account
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	if err := h.users.Signup(r.Context(), req.Name, req.Email, req.Password); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "account created"})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, appErrors.NewValidationError(err.Error()))
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Profile handles GET /users/me
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, appErrors.NewUnauthorizedError("unauthorized"))
		return
	}

	profile, err := h.users.GetProfile(r.Context(), user.UserID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(profile))
}
