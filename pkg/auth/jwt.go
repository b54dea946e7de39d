// Package auth provides JWT issuance and validation, password hashing, and
// the request-scoped user context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"letstayinn-backend/domain"
)

// Validation errors.
var (
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidToken     = errors.New("invalid token")
)

// Claims carries the authenticated identity inside a token.
type Claims struct {
	UserID string
	Name   string
	Role   domain.Role
}

type jwtClaims struct {
	Name string `json:"user_name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTConfig configures token issuance and validation. HS256 only.
type JWTConfig struct {
	SecretKey string
	Issuer    string
	Expiry    time.Duration
}

// JWTGenerator issues signed tokens.
type JWTGenerator struct {
	config JWTConfig
}

// NewJWTGenerator creates a generator. The secret must be non-empty.
func NewJWTGenerator(config JWTConfig) (*JWTGenerator, error) {
	if config.SecretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}
	if config.Expiry <= 0 {
		config.Expiry = 24 * time.Hour
	}
	return &JWTGenerator{config: config}, nil
}

// GenerateToken issues a token for a user.
func (g *JWTGenerator) GenerateToken(user domain.User) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Name: user.Name,
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    g.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.config.Expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(g.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// JWTValidator verifies tokens issued by the generator.
type JWTValidator struct {
	config JWTConfig
}

// NewJWTValidator creates a validator. The secret must be non-empty.
func NewJWTValidator(config JWTConfig) (*JWTValidator, error) {
	if config.SecretKey == "" {
		return nil, errors.New("jwt secret key is required")
	}
	return &JWTValidator{config: config}, nil
}

// ValidateToken verifies the signature and expiry and returns the claims.
func (v *JWTValidator) ValidateToken(tokenString string) (*Claims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(v.config.SecretKey), nil
	}, jwt.WithIssuer(v.config.Issuer))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrInvalidToken
		}
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{
		UserID: claims.Subject,
		Name:   claims.Name,
		Role:   role,
	}, nil
}
