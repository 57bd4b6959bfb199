// Package middleware provides HTTP middleware for the application.
package middleware

import (
	"campuspay/internal/session"
	"campuspay/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware resolves the session cookie to a user ID and stores
// it in the request context. Every protected handler derives ownership
// from this value, never from the request body.
type SessionMiddleware struct {
	sessions session.Store
}

func NewSessionMiddleware(sessions session.Store) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Handler rejects requests without a live session.
func (m *SessionMiddleware) Handler(c *fiber.Ctx) error {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return utils.Unauthorized(c, "unauthorized")
	}

	userID, err := m.sessions.Get(c.Context(), token)
	if err != nil {
		return utils.Unauthorized(c, "unauthorized")
	}

	c.Locals("userID", userID)
	c.Locals("sessionToken", token)
	return c.Next()
}

// UserID returns the authenticated user ID placed by Handler.
func UserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}

// SessionToken returns the raw session token placed by Handler.
func SessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals("sessionToken").(string)
	return token
}
