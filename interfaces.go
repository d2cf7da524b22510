package actionkit

import "context"

// Permission gates whether an action may proceed. Implementations should be
// stateless across calls and may read the service's business context.
//
// A nil return allows the invocation. Any error denies it; the dispatcher
// wraps the error as ErrPermissionDenied while keeping it reachable through
// errors.Is/As.
type Permission interface {
	Check(ctx context.Context, svc *Service, data any) error
}

// Validator inspects call data before the handler runs. The validator context
// vctx is the value produced by the action's context factory for this single
// invocation, or nil when the action has no factory.
//
// Validators must not mutate data; they communicate outward only by returning
// an error or by documented mutation of vctx. The first validator error
// aborts the pipeline and propagates to the caller unmodified.
type Validator interface {
	Validate(ctx context.Context, vctx any, data any) error
}

// Handler is the business logic invoked once permissions and validators pass.
type Handler func(ctx context.Context, svc *Service, data any) (any, error)

// ContextFactory produces the per-invocation validator context. It runs
// exactly once per call, before the first validator, and must construct a
// fresh value every call: the result is shared across the validators of one
// invocation only, never across invocations or services.
type ContextFactory func(ctx context.Context, svc *Service, data any) (any, error)

// PermissionResolver resolves the permissions guarding an action. It is
// evaluated lazily on every invocation, so the resolved set may depend on the
// call data. An empty result means "always allow".
type PermissionResolver func(svc *Service, data any) []Permission

// AuditLogger records completed invocations. The dispatcher calls it
// best-effort after every dispatch; logger failures never affect the
// invocation result.
type AuditLogger interface {
	LogInvocation(ctx context.Context, entry *InvocationEntry) error
}
