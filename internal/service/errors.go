package service

import "errors"

// Common service errors.
var (
	// ErrInvalidCredentials is returned by Login for both an unknown email
	// and a wrong password, so the response does not reveal which accounts
	// exist.
	ErrInvalidCredentials = errors.New("email or password is incorrect")

	// ErrNotPostOwner is returned when an authenticated principal attempts
	// to mutate a post they do not own.
	ErrNotPostOwner = errors.New("unauthorized")
)
