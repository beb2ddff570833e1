package helpers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified principal derived from a bearer token.
// It is re-derived per request and never persisted.
type Identity struct {
	ID       string
	Username string
	Email    string
}

// Claims carries the identity claims embedded in issued tokens.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager handles generation and verification of JWT tokens
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Generate signs a token carrying id, username and email with the
// configured validity window.
func (m *JWTManager) Generate(id, username, email string) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	claims := &Claims{
		UserID:   id,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Verify checks a raw authorization header value and returns the identity
// it carries. A "Bearer " prefix is stripped if present. Malformed,
// expired, or badly signed tokens all come back as (nil, false); callers
// cannot distinguish an invalid credential from a missing one.
func (m *JWTManager) Verify(raw string) (*Identity, bool) {
	token := strings.TrimPrefix(raw, "Bearer ")
	if token == "" {
		return nil, false
	}
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}
	return &Identity{ID: claims.UserID, Username: claims.Username, Email: claims.Email}, true
}

type identityCtxKey struct{}

// WithIdentity attaches a verified identity to the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFromContext returns the verified identity for the request, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(*Identity)
	return id, ok && id != nil
}
