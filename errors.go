package actionkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for ActionKit operations.
var (
	// ErrConfiguration is returned when the registration API is misused
	// (duplicate context factory, duplicate permission resolver, mutation
	// after freeze, duplicate action name). Configuration errors surface at
	// definition time as panics and are never deferred to call time.
	ErrConfiguration = errors.New("actionkit: invalid configuration")

	// ErrPermissionDenied is returned by the dispatcher when a resolved
	// permission denies the invocation during the permission stage.
	ErrPermissionDenied = errors.New("actionkit: permission denied")

	// ErrUnknownAction is returned when invoking an action name that is not
	// registered.
	ErrUnknownAction = errors.New("actionkit: unknown action")
)

// Error wraps a sentinel error with additional context about the invocation.
type Error struct {
	Err        error  // Underlying sentinel error
	Cause      error  // Original error from a permission or collaborator, if any
	Message    string // Additional context
	Service    string // Service name involved
	Action     string // Action name involved
	Permission string // Permission involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

// Unwrap returns the underlying errors for errors.Is/As. Both the sentinel
// and the original cause stay reachable through the chain.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithCause attaches the original error that triggered this one.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithService adds the service name to the error.
func (e *Error) WithService(service string) *Error {
	e.Service = service
	return e
}

// WithAction adds the action name to the error.
func (e *Error) WithAction(action string) *Error {
	e.Action = action
	return e
}

// WithPermission adds the permission name to the error.
func (e *Error) WithPermission(permission string) *Error {
	e.Permission = permission
	return e
}

// IsPermissionDenied checks if an error is a permission denial.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsUnknownAction checks if an error is due to an unregistered action name.
func IsUnknownAction(err error) bool {
	return errors.Is(err, ErrUnknownAction)
}
