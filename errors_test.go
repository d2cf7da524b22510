package actionkit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := NewError(ErrPermissionDenied, "permission check failed")
	assert.Equal(t, "actionkit: permission denied: permission check failed", err.Error())

	bare := NewError(ErrConfiguration, "")
	assert.Equal(t, "actionkit: invalid configuration", bare.Error())
}

func TestErrorMessageWithCause(t *testing.T) {
	cause := errors.New("user cannot create orders")
	err := NewError(ErrPermissionDenied, "permission check failed").WithCause(cause)
	assert.Equal(t,
		"actionkit: permission denied: permission check failed: user cannot create orders",
		err.Error())
}

func TestErrorUnwrapChain(t *testing.T) {
	cause := fmt.Errorf("wrapped: %w", errors.New("inner"))
	err := NewError(ErrPermissionDenied, "denied").WithCause(cause)

	assert.True(t, errors.Is(err, ErrPermissionDenied))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrConfiguration))
}

func TestErrorContextFields(t *testing.T) {
	err := NewError(ErrPermissionDenied, "denied").
		WithService("orders").
		WithAction("create_order").
		WithPermission("can_create_orders")

	assert.Equal(t, "orders", err.Service)
	assert.Equal(t, "create_order", err.Action)
	assert.Equal(t, "can_create_orders", err.Permission)
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsPermissionDenied(NewError(ErrPermissionDenied, "")))
	assert.True(t, IsConfiguration(NewError(ErrConfiguration, "")))
	assert.True(t, IsUnknownAction(NewError(ErrUnknownAction, "")))

	plain := errors.New("plain")
	assert.False(t, IsPermissionDenied(plain))
	assert.False(t, IsConfiguration(plain))
	assert.False(t, IsUnknownAction(plain))
	assert.False(t, IsPermissionDenied(nil))
}

// TestErrorTaxonomyDistinguishable verifies the three error kinds never
// overlap, so callers can map them to different responses.
func TestErrorTaxonomyDistinguishable(t *testing.T) {
	denied := NewError(ErrPermissionDenied, "x")
	config := NewError(ErrConfiguration, "x")
	validation := NewValidationError("x")

	assert.False(t, IsConfiguration(denied))
	assert.False(t, IsPermissionDenied(config))
	assert.False(t, IsPermissionDenied(validation))
	assert.False(t, IsValidationError(denied))

	var akErr *Error
	require.ErrorAs(t, denied, &akErr)
	assert.Same(t, denied, akErr)
}
