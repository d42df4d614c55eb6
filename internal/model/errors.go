package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches the query.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user with the email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidToken is returned for missing or unusable bearer tokens.
	ErrInvalidToken = errors.New("invalid token")
)
