// Package session implements server-side session storage for the console.
// The browser only ever holds an opaque session ID; the backend bearer token
// and the user profile live here and are always created and cleared as a
// unit.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/pkg/errors"
)

// Session binds a backend bearer token to the user profile it was issued for.
type Session struct {
	ID        string             `json:"id"`
	Token     string             `json:"token"`
	User      models.SessionUser `json:"user"`
	CreatedAt time.Time          `json:"created_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an admin user.
func (s *Session) IsAdmin() bool { return s.User.Role == "admin" }

// Store persists sessions. Implementations: in-process go-cache store and a
// Redis store for multi-instance deployments.
type Store interface {
	// Create mints a session for the given token and profile. The TTL is
	// bounded by the token's own expiry when that can be read.
	Create(ctx context.Context, token string, user models.SessionUser) (*Session, error)

	// Get returns the session or errors.ErrUnauthorized when it is absent
	// or expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes the session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// newSession builds the session value shared by both store implementations.
func newSession(token string, user models.SessionUser, maxTTL time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(tokenTTL(token, maxTTL)),
	}
}

// expiredGraceTTL bounds sessions minted for a token whose exp claim is
// already in the past. The backend will 401 such a token on first use; the
// short window just keeps the dead session from lingering until then.
const expiredGraceTTL = time.Minute

// tokenTTL derives the session lifetime from the bearer token's exp claim.
// The token is decoded without verification: the backend remains the
// authority on validity, this only keeps the session from outliving it. When
// the claim is absent, unreadable, or longer than maxTTL, maxTTL applies; a
// claim already in the past gets the short grace window.
func tokenTTL(token string, maxTTL time.Duration) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return maxTTL
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return maxTTL
	}
	remaining := time.Until(exp.Time)
	switch {
	case remaining <= 0:
		return expiredGraceTTL
	case remaining > maxTTL:
		return maxTTL
	}
	return remaining
}

var errSessionGone = errors.ErrUnauthorized
