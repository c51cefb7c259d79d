package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken is the single failure kind for token verification.
	// Malformed tokens, bad signatures and expired tokens all surface as
	// this error so callers cannot distinguish why verification failed.
	ErrInvalidToken = errors.New("token is invalid or expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
