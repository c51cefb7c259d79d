// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/arundaon/blog-api/internal/api/shared"
	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/service/auth"
	"github.com/arundaon/blog-api/internal/store"
)

// AuthMiddleware resolves the bearer credential on protected routes into an
// authenticated principal before the handler runs. The principal is looked
// up fresh on every request; there is no session or cache.
type AuthMiddleware struct {
	tokens    auth.TokenService
	userStore store.UserStore
}

// NewAuthMiddleware creates an AuthMiddleware.
func NewAuthMiddleware(tokens auth.TokenService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:    tokens,
		userStore: userStore,
	}
}

// Authenticate verifies the Authorization header and places the resolved
// *domain.User in the request context. All failures - missing credential,
// invalid or expired token, token subject no longer existing - yield the
// same 401 envelope shape.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized")
			return
		}

		// Clients send the raw token; a conventional Bearer prefix is
		// tolerated.
		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := m.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "token is invalid or expired")
			return
		}

		user, err := m.userStore.GetByID(r.Context(), userID)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				slog.Error("failed to load principal", "error", err, "user_id", userID)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
				return
			}
			// A valid token for a deleted user is indistinguishable from
			// any other authentication failure.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), shared.PrincipalContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal extracts the authenticated user from the request context.
func GetPrincipal(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.PrincipalContextKey).(*domain.User)
	return user, ok && user != nil
}
