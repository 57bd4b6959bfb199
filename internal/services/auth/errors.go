package auth

import "errors"

var (
	// ErrEmailTaken is returned when the signup email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a session points at a deleted user.
	ErrUserNotFound = errors.New("user not found")
)
