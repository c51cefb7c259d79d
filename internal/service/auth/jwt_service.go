// Package auth provides token issuance/verification and password hashing.
package auth

import "context"

// TokenService manages signed, time-bound identity tokens.
type TokenService interface {
	// GenerateToken creates a signed token whose subject is the user's ID.
	// The token carries issued-at and expiry claims; expiry is a fixed
	// window from issuance.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies the token's signature and expiry atomically
	// and returns the subject user ID. A token is either fully valid or
	// rejected with ErrInvalidToken; there are no partial-trust states.
	ValidateToken(ctx context.Context, tokenString string) (int64, error)
}
