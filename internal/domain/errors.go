package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments signals malformed caller-supplied tool arguments.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrMissingCredential signals that no upstream API key is configured.
	ErrMissingCredential = errors.New("missing credential")
	// ErrNetwork signals a connection or timeout failure reaching the upstream API.
	ErrNetwork = errors.New("network error")
	// ErrUpstream signals a non-2xx response from the upstream API.
	ErrUpstream = errors.New("upstream error")
	// ErrMalformedResponse signals an upstream body that is not the expected JSON shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// Validation failure reasons.
const (
	ReasonRequired      = "required"
	ReasonInvalidType   = "invalid_type"
	ReasonOutOfRange    = "out_of_range"
	ReasonInvalidEnum   = "invalid_enum"
	ReasonMinExceedsMax = "min_exceeds_max"
)

// ValidationError wraps ErrInvalidArguments with the offending field and reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArguments }

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// UpstreamStatusError wraps ErrUpstream with the upstream HTTP status and
// an optional detail extracted from the error body.
type UpstreamStatusError struct {
	Status int
	Detail string
}

func (e *UpstreamStatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", ErrUpstream.Error(), e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", ErrUpstream.Error(), e.Status)
}

func (e *UpstreamStatusError) Unwrap() error { return ErrUpstream }

// NewUpstreamStatus creates an upstream status error.
func NewUpstreamStatus(status int, detail string) error {
	return &UpstreamStatusError{Status: status, Detail: detail}
}
