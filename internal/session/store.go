// Package session holds the server-side session store. Sessions are
// opaque random tokens carried in a cookie; the store is injected into
// the auth service and middleware, never held as global state.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a token has no live session.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long a session lives without re-login.
const DefaultTTL = 7 * 24 * time.Hour

// CookieName is the session cookie set on login and signup.
const CookieName = "session_token"

// Store maps opaque tokens to user IDs.
type Store interface {
	Create(ctx context.Context, userID uint) (string, error)
	Get(ctx context.Context, token string) (uint, error)
	Delete(ctx context.Context, token string) error
}
