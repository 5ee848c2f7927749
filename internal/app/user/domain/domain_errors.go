package domain

import "errors"

var (
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates the email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole indicates an unknown account role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidArgument indicates a malformed registration field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable indicates a storage failure.
	ErrUnavailable = errors.New("service unavailable")
)
