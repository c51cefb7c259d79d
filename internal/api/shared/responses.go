// Package shared holds response helpers and context keys used by handlers
// and middleware.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WebResponse is the uniform response envelope. Exactly one of Data and
// Errors is populated; the other serializes as null.
type WebResponse struct {
	Data   any `json:"data"`
	Errors any `json:"errors"`
}

// RespondWithData writes the envelope with data set and errors null.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	respondJSON(w, r, status, WebResponse{Data: data})
}

// RespondWithError writes the envelope with errors set and data null.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	log := slog.Default()
	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	log.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	respondJSON(w, r, status, WebResponse{Errors: message})
}

func respondJSON(w http.ResponseWriter, _ *http.Request, status int, body WebResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
