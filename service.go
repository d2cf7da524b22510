package actionkit

import "context"

// Config is the explicit configuration for a Service. There is no implicit
// discovery: everything a service carries is wired here, once, at
// construction.
type Config struct {
	// Name identifies the service in logs, metrics, and the audit trail.
	Name string

	// Context is the opaque business context owned by the service, built
	// once at construction from the caller's data (current user, tenant,
	// request-scoped handles). Permissions, validators, and handlers may
	// read it through Service.Context.
	Context any

	// DefaultPermissions guard every action that neither sets an explicit
	// permission resolver nor opts out with WithoutServicePermissions.
	DefaultPermissions []Permission
}

// Service is a named grouping of actions sharing a business context. Create
// one per logical unit of work (typically once per request) and discard it
// when that unit of work ends; the service owns its context exclusively for
// the duration of its life.
//
// A Service is not inherently safe for concurrent use: if a single instance
// is shared across concurrent invocations, serializing access to the
// business context is the caller's responsibility.
type Service struct {
	name               string
	registry           *Registry
	context            any
	defaultPermissions []Permission
	dispatcher         *Dispatcher
}

// ServiceOption configures a Service at construction.
type ServiceOption func(*Service)

// WithDispatcher routes the service's invocations through the given
// dispatcher instead of a plain default one. Use it to attach logging,
// metrics, or audit to every call made through this service.
func WithDispatcher(d *Dispatcher) ServiceOption {
	return func(s *Service) {
		s.dispatcher = d
	}
}

// NewService creates a service over the given registry.
//
// Example:
//
//	svc := actionkit.NewService(registry, actionkit.Config{
//	    Name:               "orders",
//	    Context:            &OrderContext{User: user},
//	    DefaultPermissions: []actionkit.Permission{Authenticated{}},
//	})
func NewService(registry *Registry, cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		name:               cfg.Name,
		registry:           registry,
		context:            cfg.Context,
		defaultPermissions: cfg.DefaultPermissions,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.dispatcher == nil {
		s.dispatcher = NewDispatcher()
	}
	return s
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.name
}

// Registry returns the action registry this service dispatches against.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Context returns the service's business context.
func (s *Service) Context() any {
	return s.context
}

// DefaultPermissions returns a copy of the service-level default permission
// list, in order. Empty when the service defines none.
func (s *Service) DefaultPermissions() []Permission {
	out := make([]Permission, len(s.defaultPermissions))
	copy(out, s.defaultPermissions)
	return out
}

// Invoke runs the named action through the full pipeline and returns the
// handler's result. It is the uniform entrypoint for every front-end: web
// handlers, worker tasks, and CLI commands all call the same method.
func (s *Service) Invoke(ctx context.Context, name string, data any) (any, error) {
	action, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return s.dispatcher.Invoke(ctx, s, action, data)
}

// InvokeAction runs the given action through the full pipeline. It accepts
// derived actions (see Action.Using) as well as registered ones.
func (s *Service) InvokeAction(ctx context.Context, action *Action, data any) (any, error) {
	return s.dispatcher.Invoke(ctx, s, action, data)
}
