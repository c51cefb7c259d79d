// Package api contains the HTTP handlers and request/response models.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/arundaon/blog-api/internal/api/shared"
	"github.com/arundaon/blog-api/internal/service"
)

// UserHandler handles registration and login.
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		validator:   newValidator(),
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	if err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	token, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, TokenResponse{Token: token})
}
