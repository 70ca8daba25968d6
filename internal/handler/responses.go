package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wagerlab/predictgate/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."

	ErrMsgMissingPlayerIDError = "No player identifier found in postback parameters"
	ErrMsgInvalidPlayerIDError = "Invalid player identifier"
	ErrMsgConflictError        = "Too many concurrent updates for this player. Please retry."
	ErrMsgNetworkNotFoundError = "Unknown affiliate network"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerIDMissing):
		return http.StatusBadRequest, missingPlayerIDMessage(err)
	case errors.Is(err, domain.ErrPlayerIDInvalid):
		return http.StatusBadRequest, ErrMsgInvalidPlayerIDError
	case errors.Is(err, domain.ErrNetworkNotFound):
		return http.StatusBadRequest, ErrMsgNetworkNotFoundError
	case errors.Is(err, domain.ErrRecordConflict):
		return http.StatusServiceUnavailable, ErrMsgConflictError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// missingPlayerIDMessage surfaces the expected alias list carried by the
// service error, so the network operator can see which parameter names their
// callback template should use.
func missingPlayerIDMessage(err error) string {
	detail := strings.TrimPrefix(err.Error(), domain.ErrMsgPlayerIDMissing+": ")
	if detail == "" || detail == err.Error() {
		return ErrMsgMissingPlayerIDError
	}
	return fmt.Sprintf("%s; %s", ErrMsgMissingPlayerIDError, detail)
}

// respondServiceError translates a service error and writes the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
