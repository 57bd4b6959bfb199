// Package handlers contains the Fiber HTTP handlers. Handlers parse
// and validate input, call a service with the session-derived user ID
// and map service errors onto the 4xx taxonomy.
package handlers

import (
	"errors"
	"time"

	"campuspay/internal/config"
	"campuspay/internal/middleware"
	"campuspay/internal/services/auth"
	"campuspay/internal/session"
	"campuspay/internal/utils"
	"campuspay/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new user and establishes a session.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input auth.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	user, token, err := h.authService.Signup(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.BadRequest(c, "email already registered")
		}
		return utils.InternalError(c, "signup failed")
	}

	h.setSessionCookie(c, token)
	return utils.Success(c, fiber.Map{"user": user})
}

// Login authenticates by email and password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	user, token, err := h.authService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "invalid credentials")
		}
		return utils.InternalError(c, "login failed")
	}

	h.setSessionCookie(c, token)
	return utils.Success(c, fiber.Map{"user": user})
}

// Logout invalidates the current session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := middleware.SessionToken(c)
	if err := h.authService.Logout(c.Context(), token); err != nil {
		return utils.InternalError(c, "logout failed")
	}
	h.clearSessionCookie(c)
	return utils.Success(c, fiber.Map{"message": "logged out"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.CurrentUser(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to load user")
	}
	return utils.Success(c, fiber.Map{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Expires:  time.Now().Add(session.DefaultTTL),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
	})
}
