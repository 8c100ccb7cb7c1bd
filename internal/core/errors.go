package core

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or empty required input. It is never
// retried and maps to a 400-class response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConfigurationError reports a missing credential or misconfigured backend.
// It is never retried and maps to a 500-class response. The message must not
// carry credential values.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// NewConfigurationError creates a ConfigurationError with the given message.
func NewConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{Msg: msg}
}

// TimeoutError reports that a generation attempt did not resolve within its
// allotted window. The in-flight backend call is abandoned, not aborted.
type TimeoutError struct {
	Msg string
}

func (e *TimeoutError) Error() string {
	return e.Msg
}

// NewTimeoutError creates a TimeoutError with the given message.
func NewTimeoutError(msg string) *TimeoutError {
	return &TimeoutError{Msg: msg}
}

// BackendError reports an error response from the generation backend. It is
// treated like TimeoutError for retry/race purposes.
type BackendError struct {
	Msg string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// WrapBackendError wraps an underlying backend failure.
func WrapBackendError(msg string, err error) *BackendError {
	return &BackendError{Msg: msg, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsTimeout reports whether err is a TimeoutError.
func IsTimeout(err error) bool {
	var target *TimeoutError
	return errors.As(err, &target)
}

// IsBackend reports whether err is a BackendError.
func IsBackend(err error) bool {
	var target *BackendError
	return errors.As(err, &target)
}

// IsRetryable reports whether a failed generation attempt may be retried or
// raced. Validation and configuration failures are terminal.
func IsRetryable(err error) bool {
	return err != nil && !IsValidation(err) && !IsConfiguration(err)
}
