package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/arundaon/blog-api/internal/api/middleware"
	"github.com/arundaon/blog-api/internal/api/shared"
	"github.com/arundaon/blog-api/internal/domain"
	"github.com/arundaon/blog-api/internal/service"
)

// PostHandler handles post CRUD endpoints.
type PostHandler struct {
	postService service.PostService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		postService: postService,
		validator:   newValidator(),
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// List handles GET /api/posts. No authorization required.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, posts)
}

// Get handles GET /api/posts/{postId}. No authorization required.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "postId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, post)
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		HandleServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	req, ok := h.decodePostRequest(w, r)
	if !ok {
		return
	}

	if err := h.postService.Create(r.Context(), principal, req.Content); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Update handles PUT /api/posts/{postId}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		HandleServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	id, err := getPathID(r, "postId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	req, ok := h.decodePostRequest(w, r)
	if !ok {
		return
	}

	if err := h.postService.Update(r.Context(), principal, id, req.Content); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Delete handles DELETE /api/posts/{postId}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		HandleServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	id, err := getPathID(r, "postId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.postService.Delete(r.Context(), principal, id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// decodePostRequest decodes and validates a post payload, writing the
// error response itself on failure.
func (h *PostHandler) decodePostRequest(w http.ResponseWriter, r *http.Request) (PostRequest, bool) {
	var req PostRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "validation error: "+err.Error())
		return req, false
	}

	return req, true
}
