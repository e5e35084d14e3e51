package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler normalizes pipeline errors and writes standardized HTTP
// error responses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// WriteHTTPError logs the error and writes a JSON error body with the
// mapped status code. errorKey is the top-level key the surrounding API
// contract expects (e.g. "suggestion_failed").
func (h *ErrorHandler) WriteHTTPError(w http.ResponseWriter, errorKey string, err error) {
	stdErr := h.normalizeError(err)

	h.logger.Error("request failed", map[string]interface{}{
		"errorCode":    stdErr.Code,
		"errorMessage": stdErr.Message,
		"errorDetails": stdErr.Details,
		"retryable":    stdErr.Retryable,
	})

	status := HTTPStatus(stdErr.Code)

	var body map[string]interface{}
	if stdErr.Code == ErrCodeInvalidInput {
		body = map[string]interface{}{"error": stdErr.Details}
	} else {
		body = map[string]interface{}{
			"error":   errorKey,
			"details": stdErr.Message + ": " + stdErr.Details,
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// normalizeError ensures we always have a StandardError.
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
