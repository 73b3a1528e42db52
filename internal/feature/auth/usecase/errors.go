package usecase

import "errors"

var (
	// ErrUsernameTaken is returned when registering with a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrEmailTaken is returned when registering with an email that
	// already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login fails. It deliberately
	// covers both "username not found" and "wrong password" so that callers
	// cannot tell whether a username exists.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUserNotFound is returned when a user cannot be found by username,
	// email or ID.
	ErrUserNotFound = errors.New("user not found")
)
