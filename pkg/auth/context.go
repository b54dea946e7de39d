package auth

import (
	"context"
	"errors"

	"letstayinn-backend/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// ErrNoUserInContext reports a request with no authenticated user attached.
var ErrNoUserInContext = errors.New("no user in context")

// UserContext is the authenticated identity attached to a request.
type UserContext struct {
	UserID string
	Name   string
	Role   domain.Role
}

// SetUserInContext attaches an authenticated user to a context.
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext returns the authenticated user attached to a context.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, ErrNoUserInContext
	}
	return user, nil
}
