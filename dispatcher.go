package actionkit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher executes the action pipeline: permission evaluation, validator
// context construction, validator chain, handler. It holds no mutable state
// of its own, caches nothing across calls, and retries nothing; a single
// dispatcher is safe to reuse across arbitrarily many concurrent
// invocations.
type Dispatcher struct {
	logger  zerolog.Logger
	metrics *Collector
	audit   AuditLogger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger attaches a zerolog logger. The dispatcher emits one debug event
// per invocation with service, action, outcome, and duration.
func WithLogger(logger zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithMetrics attaches a prometheus collector recording invocation counts,
// durations, and permission denials.
func WithMetrics(c *Collector) DispatcherOption {
	return func(d *Dispatcher) {
		d.metrics = c
	}
}

// WithAuditLogger attaches an audit logger. The dispatcher records every
// completed invocation best-effort: audit failures never affect the
// invocation result.
func WithAuditLogger(l AuditLogger) DispatcherOption {
	return func(d *Dispatcher) {
		d.audit = l
	}
}

// NewDispatcher creates a dispatcher. Without options it is silent: no
// logging, no metrics, no audit.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Invoke runs one synchronous invocation of action against svc. Each stage
// is a terminal point of failure:
//
//  1. Permissions are resolved (explicit resolver, else service defaults,
//     else skipped when opted out) and checked in sequence. The first denial
//     aborts with ErrPermissionDenied; remaining permissions, the context
//     factory, validators, and the handler are not invoked.
//  2. The validator context is built exactly once when a factory is present.
//  3. Validators run strictly in declaration order; the first error aborts
//     and propagates unmodified.
//  4. The handler runs; its result or error propagates unmodified.
//
// The first Invoke against an action freezes it: registration is over once
// traffic flows.
func (d *Dispatcher) Invoke(ctx context.Context, svc *Service, action *Action, data any) (any, error) {
	if svc == nil {
		return nil, NewError(ErrConfiguration, "cannot invoke with a nil service")
	}
	if action == nil {
		return nil, NewError(ErrConfiguration, "cannot invoke a nil action").WithService(svc.name)
	}

	action.freeze()

	if d.metrics != nil {
		d.metrics.InvocationsInFlight.Inc()
		defer d.metrics.InvocationsInFlight.Dec()
	}

	start := time.Now()
	result, outcome, err := d.dispatch(ctx, svc, action, data)
	d.observe(ctx, svc, action, outcome, time.Since(start), err)
	return result, err
}

func (d *Dispatcher) dispatch(ctx context.Context, svc *Service, action *Action, data any) (any, Outcome, error) {
	if perms, guarded := action.resolvePermissions(svc, data); guarded {
		for _, p := range perms {
			if err := p.Check(ctx, svc, data); err != nil {
				return nil, OutcomePermissionDenied, NewError(ErrPermissionDenied, "permission check failed").
					WithCause(err).
					WithService(svc.name).
					WithAction(action.name).
					WithPermission(permissionName(p))
			}
		}
	}

	var vctx any
	if action.contextFactory != nil {
		var err error
		vctx, err = action.contextFactory(ctx, svc, data)
		if err != nil {
			return nil, OutcomeContextError, err
		}
	}

	for _, v := range action.validators {
		if err := v.Validate(ctx, vctx, data); err != nil {
			return nil, OutcomeValidationFailed, err
		}
	}

	result, err := action.handler(ctx, svc, data)
	if err != nil {
		return nil, OutcomeHandlerError, err
	}
	return result, OutcomeOK, nil
}

func (d *Dispatcher) observe(ctx context.Context, svc *Service, action *Action, outcome Outcome, elapsed time.Duration, err error) {
	evt := d.logger.Debug().
		Str("service", svc.name).
		Str("action", action.name).
		Str("outcome", string(outcome)).
		Dur("duration", elapsed)
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Msg("action invoked")

	if d.metrics != nil {
		d.metrics.InvocationsTotal.WithLabelValues(svc.name, action.name, string(outcome)).Inc()
		d.metrics.InvocationDuration.WithLabelValues(svc.name, action.name).Observe(elapsed.Seconds())
		if outcome == OutcomePermissionDenied {
			d.metrics.PermissionDenials.WithLabelValues(svc.name, action.name).Inc()
		}
	}

	if d.audit != nil {
		entry := &InvocationEntry{
			Service:   svc.name,
			Action:    action.name,
			Outcome:   outcome,
			Duration:  elapsed,
			ActorID:   GetActorID(ctx),
			IPAddress: GetIPAddress(ctx),
			UserAgent: GetUserAgent(ctx),
			RequestID: GetRequestID(ctx),
		}
		if err != nil {
			entry.Error = err.Error()
		}
		_ = d.audit.LogInvocation(ctx, entry) // best effort, never fails the invocation
	}
}
