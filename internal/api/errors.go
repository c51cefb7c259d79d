package api

import (
	"errors"
	"net/http"

	"github.com/arundaon/blog-api/internal/api/shared"
	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/service"
	"github.com/arundaon/blog-api/internal/service/auth"
	"github.com/arundaon/blog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// handlers never leak internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation failures, including malformed path parameters.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, store.ErrInvalidEntity),
		isUserValidationError(err):
		return http.StatusBadRequest

	// Authentication failures. Ownership denial maps to 401 as well: the
	// contract surfaces not-owner identically to not-authenticated.
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotPostOwner),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrPostNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for an error.
// Unknown errors get a generic message; internals are never exposed.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "user already registered"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "email or password is incorrect"
	case errors.Is(err, auth.ErrInvalidToken):
		return "token is invalid or expired"
	case errors.Is(err, service.ErrNotPostOwner),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, store.ErrUserNotFound):
		return "unauthorized"
	case errors.Is(err, store.ErrPostNotFound):
		return "post not found"
	case errors.Is(err, domain.ErrEmptyContent):
		return domain.ErrEmptyContent.Error()
	case isUserValidationError(err),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return err.Error()
	default:
		return "internal server error"
	}
}

// HandleServiceError writes the envelope for an error returned by a
// service, using the shared status and message mapping.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}

// isUserValidationError reports whether err is one of the user field
// constraint sentinels, which are safe to echo back to the client.
func isUserValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyName,
		domain.ErrNameLength,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrEmailTooLong,
		domain.ErrPasswordLength,
		domain.ErrEmptyPassword,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
