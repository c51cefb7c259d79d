package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/arundaon/blog-api/internal/domain"
)

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// getPathID extracts a numeric ID from the URL path. A non-numeric value is
// a validation failure (400), not a missing resource.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be a number", domain.ErrInvalidID)
	}

	return id, nil
}

// newValidator builds the request validator with the custom "notblank"
// rule (non-empty after trimming whitespace).
func newValidator() *validator.Validate {
	v := validator.New()
	// Registration of a literal tag cannot fail; ignore the error like a
	// static tag table would.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}
