package errors

import (
	"errors"
	"net/http"
)

// ErrorKind represents the taxonomy of API errors. Validation failures keep
// their own kind; every other failure (temp-file I/O, provider errors,
// panics) collapses into the transcription kind and surfaces as a 500.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindTranscription ErrorKind = "transcription"
	KindInternal      ErrorKind = "internal"
)

// APIError is the structured error returned by handlers. The wire shape is
// {"error": "<message>"} — the kind drives the status code but is not
// serialized.
type APIError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for the error kind. The mapping is
// exhaustive and explicit; there is no catch-all branch hiding a kind.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindTranscription:
		return http.StatusInternalServerError
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error (HTTP 400)
func NewValidationError(message string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
	}
}

// NewTranscriptionError wraps a failure from temp-file handling or the
// transcription provider. The message is exposed to the caller verbatim.
func NewTranscriptionError(message string) *APIError {
	return &APIError{
		Kind:    KindTranscription,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// FromError converts any error to an APIError. Typed APIErrors pass through
// with their kind intact; everything else becomes a transcription failure
// carrying the error's own text.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	return NewTranscriptionError(err.Error())
}
