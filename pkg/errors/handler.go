package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse represents the API error response format.
type ErrorResponse struct {
	Error     bool   `json:"error"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorHandler handles errors and sends appropriate HTTP responses.
type ErrorHandler struct {
	logger        *zap.Logger
	defaultStatus int
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger:        logger,
		defaultStatus: http.StatusInternalServerError,
	}
}

// Handle processes an error and sends an HTTP response. Internal detail
// (storage faults, corrupt records) is logged but never leaked to clients.
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	requestID := r.Header.Get("X-Request-ID")

	status := h.defaultStatus
	response := ErrorResponse{
		Error:     true,
		Type:      string(ErrorTypeInternal),
		Message:   "An internal error occurred",
		RequestID: requestID,
	}

	if appErr := GetAppError(err); appErr != nil {
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}

		switch appErr.Type {
		case ErrorTypeInternal, ErrorTypeUnavailable, ErrorTypeCorruptRecord:
			// Opaque at the boundary.
			h.logger.Error("Request failed",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", requestID),
				zap.Int("status", status),
			)
		default:
			response.Type = string(appErr.Type)
			response.Message = appErr.Message
			response.Code = appErr.Code
			h.logger.Warn("Request rejected",
				zap.String("type", string(appErr.Type)),
				zap.String("message", appErr.Message),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", requestID),
				zap.Int("status", status),
			)
		}
	} else {
		h.logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
