package actionkit

import (
	"fmt"
	"sync"
)

// Registry holds all action definitions for a service type. It is created at
// startup, populated through Register before any service is instantiated, and
// treated as immutable afterwards.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]*Action
}

// NewRegistry creates a new action registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]*Action),
	}
}

// Register declares a new action and returns its builder for fluent
// configuration. The returned action has no explicit permissions, no
// validators, no context factory, and falls back to the service's default
// permissions until configured otherwise.
//
// Registering an empty name, a nil handler, or a duplicate name panics with
// ErrConfiguration: registration happens at definition time only, and misuse
// must fail before any traffic is served.
//
// Example:
//
//	registry.Register("create_order", createOrder).
//	    PermissionsFunc(orderCreationPermissions).
//	    ContextFactory(newOrderContext).
//	    Validate(validateItems).
//	    Validate(validateShippingDate)
func (r *Registry) Register(name string, handler Handler) *Action {
	if name == "" {
		panic(NewError(ErrConfiguration, "action name cannot be empty"))
	}
	if handler == nil {
		panic(NewError(ErrConfiguration, "action handler cannot be nil").WithAction(name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[name]; exists {
		panic(NewError(ErrConfiguration,
			fmt.Sprintf("action %q already registered", name)).WithAction(name))
	}

	action := &Action{
		name:                  name,
		handler:               handler,
		useServicePermissions: true,
	}
	r.actions[name] = action
	return action
}

// Get returns the action registered under name.
func (r *Registry) Get(name string) (*Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	action, exists := r.actions[name]
	if !exists {
		return nil, NewError(ErrUnknownAction,
			fmt.Sprintf("action %q not registered", name)).WithAction(name)
	}
	return action, nil
}

// Names returns all registered action names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	return names
}

// Actions returns all registered actions.
func (r *Registry) Actions() []*Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actions := make([]*Action, 0, len(r.actions))
	for _, a := range r.actions {
		actions = append(actions, a)
	}
	return actions
}
