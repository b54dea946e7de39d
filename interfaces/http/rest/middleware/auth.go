package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"letstayinn-backend/domain"
	"letstayinn-backend/pkg/auth"
)

// Authenticate validates the bearer token and puts the caller in the
// request context.
func Authenticate(validator *auth.JWTValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				respondUnauthorized(w, "Missing authentication token")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn("invalid token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)

				switch {
				case errors.Is(err, auth.ErrExpiredToken):
					respondUnauthorized(w, "Token has expired")
				case errors.Is(err, auth.ErrInvalidSignature):
					respondUnauthorized(w, "Invalid token signature")
				default:
					respondUnauthorized(w, "Invalid token")
				}
				return
			}

			userCtx := &auth.UserContext{
				UserID: claims.UserID,
				Name:   claims.Name,
				Role:   claims.Role,
			}

			ctx := auth.SetUserInContext(r.Context(), userCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.GetUserFromContext(r.Context())
			if err != nil {
				respondUnauthorized(w, "Unauthorized")
				return
			}

			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				respondWithError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractToken pulls the JWT out of the Authorization header.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return authHeader
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(w http.ResponseWriter, message string) {
	respondWithError(w, http.StatusUnauthorized, message)
}

// respondWithError sends an error response with a specific status code
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    code,
	})
}
