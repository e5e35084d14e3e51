// Package errors provides standardized error handling for the strategy API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	ErrCodeSiteContextNotFound    ErrorCode = "SITE_CONTEXT_NOT_FOUND"
	ErrCodeNoBlueprintsAvailable  ErrorCode = "NO_BLUEPRINTS_AVAILABLE"
	ErrCodeSuggestionPersistError ErrorCode = "SUGGESTION_PERSIST_FAILED"
	ErrCodeDetectionPersistError  ErrorCode = "AGENT_DETECTION_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HasCode reports whether err is a StandardError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidInputError creates a non-retryable request validation error.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSiteContextNotFoundError creates a non-retryable lookup error.
func NewSiteContextNotFoundError(siteContextID int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeSiteContextNotFound,
		Message:   "Site context not found",
		Details:   fmt.Sprintf("siteContextId: %d", siteContextID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoBlueprintsAvailableError creates a non-retryable blueprint filter error.
func NewNoBlueprintsAvailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoBlueprintsAvailable,
		Message:   "No blueprints available for suggestion generation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSuggestionPersistError creates a retryable persistence error.
func NewSuggestionPersistError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSuggestionPersistError,
		Message:   "Failed to persist suggestions",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDetectionPersistError creates a retryable persistence error.
func NewDetectionPersistError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDetectionPersistError,
		Message:   "Failed to persist agent detection",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", queryName, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeInvalidInput:             http.StatusUnprocessableEntity,
	ErrCodeSiteContextNotFound:      http.StatusInternalServerError,
	ErrCodeNoBlueprintsAvailable:    http.StatusInternalServerError,
	ErrCodeSuggestionPersistError:   http.StatusInternalServerError,
	ErrCodeDetectionPersistError:    http.StatusInternalServerError,
	ErrCodeDatabaseConnectionFailed: http.StatusInternalServerError,
	ErrCodeQueryExecutionFailed:     http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeSuggestionPersistError,
		ErrCodeDetectionPersistError,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed:
		return true
	default:
		return false
	}
}
