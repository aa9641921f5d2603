package errors

import (
	"errors"
	"fmt"
)

// Domain error types for tool logic

var (
	// ErrInvalidArgument indicates a tool was called with a bad or missing argument
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUpstream indicates the upstream Maps API or its client failed
	ErrUpstream = errors.New("upstream error")

	// ErrNotFound indicates the upstream returned no usable result
	ErrNotFound = errors.New("not found")

	// ErrInternal indicates an internal error
	ErrInternal = errors.New("internal error")

	// ErrUnavailable indicates a required dependency is not configured
	ErrUnavailable = errors.New("service unavailable")
)

// ValidationError reports a bad tool argument. It is returned before any
// network call is made and always names the offending field.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid argument: field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid argument: field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap makes ValidationError match ErrInvalidArgument
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// UpstreamError wraps a failure of the upstream Maps API. The original error
// message is preserved verbatim; there is no retry or partial-result
// handling behind it.
type UpstreamError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the original upstream error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes UpstreamError match ErrUpstream in addition to the wrapped chain
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewUpstreamError creates a new upstream error
func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
