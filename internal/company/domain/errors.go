package domain

import (
	"errors"
	"fmt"
)

// Sentinels for the backend error taxonomy. The gRPC adapter reclassifies
// transport status codes onto these; handlers map them to HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnavailable        = errors.New("backend unavailable")
	ErrNotFound           = errors.New("not found")
	ErrInternal           = errors.New("internal error")
)

// BackendError wraps a taxonomy sentinel with the backend's detail message.
type BackendError struct {
	Kind   error
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

func (e *BackendError) Unwrap() error {
	return e.Kind
}

// NewBackendError builds a classified backend error.
func NewBackendError(kind error, detail string) *BackendError {
	return &BackendError{Kind: kind, Detail: detail}
}

// BackendDetail extracts the backend detail message from err, if any.
func BackendDetail(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Detail
	}
	return ""
}
