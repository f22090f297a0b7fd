// Package errors provides custom error types and error handling for the pomodoro tracker.
package errors

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// TrackerError is the base error type for all application errors.
type TrackerError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// Error implements the error interface.
func (e *TrackerError) Error() string {
	return e.Message
}

// ErrorResponse represents the JSON error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error details.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError represents a 400 Bad Request error for invalid input.
func ValidationError(message string) *TrackerError {
	return &TrackerError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NotFoundError represents a 404 Not Found error.
func NotFoundError(message string) *TrackerError {
	return &TrackerError{
		Code:       "NOT_FOUND",
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// StorageError represents a 500 error caused by the persistence layer.
// The interaction that triggered it does not complete; no partial state is
// written since each store operation is a single statement.
func StorageError() *TrackerError {
	return &TrackerError{
		Code:       "STORAGE_ERROR",
		Message:    "The record store is unavailable",
		StatusCode: http.StatusInternalServerError,
	}
}

// RateLimitError represents a 429 Too Many Requests error.
type RateLimitError struct {
	*TrackerError
	RetryAfter int
}

// NewRateLimitError creates a new rate limit error with retry-after seconds.
func NewRateLimitError(retryAfter int) *RateLimitError {
	return &RateLimitError{
		TrackerError: &TrackerError{
			Code:       "RATE_LIMITED",
			Message:    "Too many requests",
			StatusCode: http.StatusTooManyRequests,
		},
		RetryAfter: retryAfter,
	}
}

// InternalError represents a 500 Internal Server Error.
// Note: This should NOT expose internal details to the client.
func InternalError() *TrackerError {
	return &TrackerError{
		Code:       "INTERNAL_ERROR",
		Message:    "An internal error occurred",
		StatusCode: http.StatusInternalServerError,
	}
}

// WriteError writes an error response to the HTTP response writer.
// It ensures no internal details are exposed in the response.
func WriteError(w http.ResponseWriter, err error) {
	var statusCode int
	var response ErrorResponse

	switch e := err.(type) {
	case *RateLimitError:
		statusCode = e.StatusCode
		w.Header().Set("Retry-After", strconv.Itoa(e.RetryAfter))
		response = ErrorResponse{
			Error: ErrorDetail{
				Code:    e.Code,
				Message: e.Message,
			},
		}
	case *TrackerError:
		statusCode = e.StatusCode
		response = ErrorResponse{
			Error: ErrorDetail{
				Code:    e.Code,
				Message: e.Message,
			},
		}
	default:
		// For unknown errors, return a generic internal error
		// to avoid exposing internal details
		statusCode = http.StatusInternalServerError
		response = ErrorResponse{
			Error: ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "An internal error occurred",
			},
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
