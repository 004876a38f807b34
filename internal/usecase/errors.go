package usecase

import "errors"

// Sentinel errors surfaced to the handlers, which map them to HTTP statuses.

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrDuplicateTitle     = errors.New("movie already exists")
	ErrShowNotFound       = errors.New("show not found")
	ErrShowNotActive      = errors.New("show is not active")
	ErrPastShowDate       = errors.New("show date is in the past")
)
