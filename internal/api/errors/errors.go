package errors

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/recommender"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindConflict           ErrorKind = "conflict"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadRequest         ErrorKind = "bad_request"
	KindBadGateway         ErrorKind = "bad_gateway"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case KindBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewServiceUnavailableError creates a service unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return &APIError{
		Kind:    KindServiceUnavailable,
		Message: message,
	}
}

// FromDomain maps an application error to the API error reported to clients.
// Errors without a specific mapping become internal errors with a generic message.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, apperrors.ErrTrackNotFound):
		return &APIError{Kind: KindNotFound, Message: err.Error()}
	case errors.Is(err, recommender.ErrInvalidK):
		return &APIError{
			Kind:    KindBadRequest,
			Message: "Invalid result size",
			Details: map[string]string{"k": err.Error()},
		}
	case errors.Is(err, apperrors.ErrMissingCredentials):
		return NewServiceUnavailableError("Catalog import is not configured")
	case errors.Is(err, apperrors.ErrCatalogUnavailable):
		return NewServiceUnavailableError("Catalog service unavailable")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return &APIError{Kind: KindBadGateway, Message: "Catalog service rejected the configured credentials"}
	case errors.Is(err, apperrors.ErrRequestFailed), errors.Is(err, apperrors.ErrResponseInvalid):
		return &APIError{Kind: KindBadGateway, Message: "Catalog service request failed"}
	default:
		return NewInternalError("Internal server error")
	}
}
