// Package errors provides standardized error handling for the API layer.
package errors

import (
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
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeSearchNotConfigured ErrorCode = "SEARCH_NOT_CONFIGURED"
	ErrCodeSearchQueryFailed   ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout       ErrorCode = "SEARCH_TIMEOUT"

	ErrCodeConciergeFailed ErrorCode = "CONCIERGE_FAILED"
	ErrCodeLLMTimeout      ErrorCode = "LLM_TIMEOUT"

	ErrCodeEmbeddingFailed   ErrorCode = "EMBEDDING_FAILED"
	ErrCodeVectorQueryFailed ErrorCode = "VECTOR_QUERY_FAILED"
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

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Invalid request parameters",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchNotConfiguredError signals a missing search provider key; the
// search route degrades to an empty result set rather than failing.
func NewSearchNotConfiguredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchNotConfigured,
		Message:   "Search requires provider API key configuration",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchQueryFailedError creates a retryable search provider error.
func NewSearchQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Search provider query error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchTimeoutError creates a retryable search timeout error.
func NewSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchTimeout,
		Message:   "Search provider timeout",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewConciergeFailedError creates a retryable concierge completion error.
func NewConciergeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConciergeFailed,
		Message:   "Concierge completion error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable LLM timeout error.
func NewLLMTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "LLM completion timeout",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmbeddingFailedError creates a retryable embedding provider error.
func NewEmbeddingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmbeddingFailed,
		Message:   "Embedding generation error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewVectorQueryFailedError creates a retryable vector index error.
func NewVectorQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeVectorQueryFailed,
		Message:   "Vector index query error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus maps an error code to the response status. Provider failures
// surface as 502 since this layer never distinguishes their subtypes.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeSearchQueryFailed, ErrCodeConciergeFailed,
		ErrCodeEmbeddingFailed, ErrCodeVectorQueryFailed:
		return http.StatusBadGateway
	case ErrCodeSearchTimeout, ErrCodeLLMTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// StatusFor resolves the HTTP status for any error value.
func StatusFor(err error) int {
	if stdErr, ok := err.(*StandardError); ok {
		return HTTPStatus(stdErr.Code)
	}
	return http.StatusInternalServerError
}
