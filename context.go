package actionkit

import (
	"context"
)

// Context keys for ActionKit values.
type contextKey string

const (
	contextKeyActorID   contextKey = "actionkit:actor_id"
	contextKeyIPAddress contextKey = "actionkit:ip_address"
	contextKeyUserAgent contextKey = "actionkit:user_agent"
	contextKeyRequestID contextKey = "actionkit:request_id"
)

// WithActorID adds the actor performing the invocation to the context. The
// audit trail records it with every dispatched action.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, contextKeyActorID, actorID)
}

// GetActorID retrieves the actor ID from context. Returns empty string if
// not set.
func GetActorID(ctx context.Context) string {
	if v := ctx.Value(contextKeyActorID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithIPAddress adds the client IP address to the context (for audit).
func WithIPAddress(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKeyIPAddress, ip)
}

// GetIPAddress retrieves the IP address from context.
func GetIPAddress(ctx context.Context) string {
	if v := ctx.Value(contextKeyIPAddress); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithUserAgent adds the user agent to the context (for audit).
func WithUserAgent(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, contextKeyUserAgent, ua)
}

// GetUserAgent retrieves the user agent from context.
func GetUserAgent(ctx context.Context) string {
	if v := ctx.Value(contextKeyUserAgent); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context (for audit and
// correlation).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(contextKeyRequestID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// InvocationMetadata holds all audit-related information from context.
type InvocationMetadata struct {
	ActorID   string
	IPAddress string
	UserAgent string
	RequestID string
}

// GetInvocationMetadata extracts all audit information from context.
func GetInvocationMetadata(ctx context.Context) InvocationMetadata {
	return InvocationMetadata{
		ActorID:   GetActorID(ctx),
		IPAddress: GetIPAddress(ctx),
		UserAgent: GetUserAgent(ctx),
		RequestID: GetRequestID(ctx),
	}
}

// WithInvocationMetadata adds all audit information to context at once.
func WithInvocationMetadata(ctx context.Context, md InvocationMetadata) context.Context {
	if md.ActorID != "" {
		ctx = WithActorID(ctx, md.ActorID)
	}
	if md.IPAddress != "" {
		ctx = WithIPAddress(ctx, md.IPAddress)
	}
	if md.UserAgent != "" {
		ctx = WithUserAgent(ctx, md.UserAgent)
	}
	if md.RequestID != "" {
		ctx = WithRequestID(ctx, md.RequestID)
	}
	return ctx
}
