package actionkit

import (
	"context"
	"errors"
	"fmt"
)

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(ctx context.Context, vctx any, data any) error

// Validate implements Validator.
func (f ValidatorFunc) Validate(ctx context.Context, vctx any, data any) error {
	return f(ctx, vctx, data)
}

// Named wraps a validator with a stable name, used by Action.Only and
// Action.Excluding to select validators in tests and by error context.
func Named(name string, v Validator) Validator {
	return namedValidator{name: name, inner: v}
}

type namedValidator struct {
	name  string
	inner Validator
}

func (n namedValidator) Name() string {
	return n.name
}

func (n namedValidator) Validate(ctx context.Context, vctx any, data any) error {
	return n.inner.Validate(ctx, vctx, data)
}

// validatorName reports a stable name for a validator. Validators may
// implement interface{ Name() string }; otherwise the concrete type name is
// used.
func validatorName(v Validator) string {
	if named, ok := v.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", v)
}

// ValidationError is the convenience error vocabulary for validators. The
// framework never requires it: whatever a validator returns propagates to
// the caller unmodified. Front-end adapters map it to an input-shape
// response (the HTTP adapter answers 422).
type ValidationError struct {
	Message string
	Details map[string]any
}

// NewValidationError creates a ValidationError with a message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// WithDetail attaches a named detail to the error.
func (e *ValidationError) WithDetail(key string, value any) *ValidationError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "actionkit: validation failed"
	}
	return e.Message
}

// IsValidationError checks if an error is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
