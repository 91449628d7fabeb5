package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common API errors.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrRateLimited = errors.New("rate limited")
	ErrServerError = errors.New("server error")
	ErrBadRequest  = errors.New("bad request")
)

// APIError represents a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Is implements error matching for APIError.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return errors.Is(target, ErrBadRequest)
	case 404:
		return errors.Is(target, ErrNotFound)
	case 429:
		return errors.Is(target, ErrRateLimited)
	}
	if e.StatusCode >= 500 {
		return errors.Is(target, ErrServerError)
	}
	return false
}

// NewAPIError creates an APIError from an HTTP status code.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ErrorMessage pulls a human readable message out of an error body. It
// prefers "message" over "error" and returns "" for anything else,
// including bodies that are not JSON.
func ErrorMessage(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	return errResp.Error
}
