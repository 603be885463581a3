package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the service distinguishes.
var (
	// ErrNotFound means no row or feature matches a requested identifier.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput means the request parameters are malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable means a required dataset URL is not configured.
	ErrUnavailable = errors.New("dataset not configured")
	// ErrTransport means a dataset fetch failed (non-2xx or network error).
	ErrTransport = errors.New("transport error")
	// ErrTimeout means a dataset fetch exceeded its deadline.
	ErrTimeout = errors.New("timeout")
	// ErrInternal is an unexpected failure.
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code and a user-facing message alongside the
// wrapped cause.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail.
func (e *DomainError) UserMessage() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports that no entity of the given type matches id.
func NewNotFoundError(resourceType, id string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, id),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError reports malformed request parameters.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewUnavailableError reports a dataset whose source URL is not configured.
// This is a configuration error surfaced to the caller, fatal for the
// endpoints backed by that dataset only.
func NewUnavailableError(dataset string) error {
	return &DomainError{
		Code:    "DATASET_UNAVAILABLE",
		Message: fmt.Sprintf("no source URL configured for the %s dataset", dataset),
		Err:     ErrUnavailable,
	}
}

// NewTransportError reports a failed dataset fetch.
func NewTransportError(url string, err error) error {
	return &DomainError{
		Code:    "UPSTREAM_ERROR",
		Message: "failed to fetch source dataset",
		Err:     fmt.Errorf("%w: %s: %v", ErrTransport, url, err),
	}
}

// NewTimeoutError reports a dataset fetch that exceeded its deadline. Kept
// distinct from NewTransportError so callers can tell the two apart.
func NewTimeoutError(url string) error {
	return &DomainError{
		Code:    "UPSTREAM_TIMEOUT",
		Message: "timed out fetching source dataset",
		Err:     fmt.Errorf("%w: %s", ErrTimeout, url),
	}
}

// NewInternalError wraps an unexpected failure without exposing detail.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
