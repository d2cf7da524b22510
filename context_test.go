package actionkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextActorID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetActorID(ctx))

	ctx = WithActorID(ctx, "user-123")
	assert.Equal(t, "user-123", GetActorID(ctx))
}

func TestContextRequestMetadataValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetIPAddress(ctx))
	assert.Empty(t, GetUserAgent(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithIPAddress(ctx, "10.0.0.1")
	ctx = WithUserAgent(ctx, "curl/8.0")
	ctx = WithRequestID(ctx, "req-42")

	assert.Equal(t, "10.0.0.1", GetIPAddress(ctx))
	assert.Equal(t, "curl/8.0", GetUserAgent(ctx))
	assert.Equal(t, "req-42", GetRequestID(ctx))
}

func TestInvocationMetadataRoundTrip(t *testing.T) {
	md := InvocationMetadata{
		ActorID:   "user-123",
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8.0",
		RequestID: "req-42",
	}

	ctx := WithInvocationMetadata(context.Background(), md)
	assert.Equal(t, md, GetInvocationMetadata(ctx))
}

func TestInvocationMetadataPartial(t *testing.T) {
	ctx := WithActorID(context.Background(), "user-123")
	ctx = WithInvocationMetadata(ctx, InvocationMetadata{RequestID: "req-42"})

	// Empty fields don't clobber previously set values.
	got := GetInvocationMetadata(ctx)
	assert.Equal(t, "user-123", got.ActorID)
	assert.Equal(t, "req-42", got.RequestID)
}
