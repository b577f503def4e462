package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Fields any    `json:"fields,omitempty"`
}

// MessageResponse represents a plain confirmation response
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondMessage sends a `{"message": ...}` confirmation response.
func RespondMessage(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, MessageResponse{Message: message}, statusCode)
}

// RespondErrorWithCode sends a JSON error response with a machine-readable error code.
func RespondErrorWithCode(w http.ResponseWriter, message string, code string, statusCode int) {
	RespondJSON(w, ErrorResponse{Error: message, Code: code}, statusCode)
}

// RespondFieldErrors sends a validation failure with a field -> message object.
// fields is expected to marshal to an object, e.g. ozzo's validation.Errors.
func RespondFieldErrors(w http.ResponseWriter, fields any) {
	RespondJSON(w, ErrorResponse{
		Error:  "validation failed",
		Code:   CodeValidationFailed,
		Fields: fields,
	}, http.StatusBadRequest)
}
