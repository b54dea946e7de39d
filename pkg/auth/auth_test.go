package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letstayinn-backend/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret", Issuer: "letstayinn", Expiry: time.Hour}
	gen, err := NewJWTGenerator(cfg)
	require.NoError(t, err)
	val, err := NewJWTValidator(cfg)
	require.NoError(t, err)

	token, err := gen.GenerateToken(domain.User{
		ID: "u-1", Name: "Asha", Role: domain.RoleManager,
	})
	require.NoError(t, err)

	claims, err := val.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, domain.RoleManager, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	gen, err := NewJWTGenerator(JWTConfig{SecretKey: "secret-a", Issuer: "letstayinn"})
	require.NoError(t, err)
	val, err := NewJWTValidator(JWTConfig{SecretKey: "secret-b", Issuer: "letstayinn"})
	require.NoError(t, err)

	token, err := gen.GenerateToken(domain.User{ID: "u-1", Role: domain.RoleGuest})
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret", Issuer: "letstayinn", Expiry: -time.Minute}
	gen := &JWTGenerator{config: cfg}
	val, err := NewJWTValidator(cfg)
	require.NoError(t, err)

	token, err := gen.GenerateToken(domain.User{ID: "u-1", Role: domain.RoleGuest})
	require.NoError(t, err)

	_, err = val.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, VerifyPassword(hash, "hunter2"))
	assert.ErrorIs(t, VerifyPassword(hash, "hunter3"), ErrWrongPassword)
}

func TestUserContextRoundTrip(t *testing.T) {
	_, err := GetUserFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoUserInContext)

	ctx := SetUserInContext(context.Background(), &UserContext{
		UserID: "u-1", Role: domain.RoleGuest,
	})
	user, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
}
