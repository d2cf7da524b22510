package actionkit

import (
	"fmt"
	"sync/atomic"
)

// Action is the immutable metadata describing one callable unit of business
// logic: its handler, its permission resolution, its optional context
// factory, and its ordered validator list.
//
// An Action is mutable only through its builder methods during registration.
// It freezes at its first dispatch; any builder call after the freeze panics
// with ErrConfiguration. Once frozen, the action is safely shared read-only
// across arbitrarily many concurrent invocations without locking.
type Action struct {
	name                  string
	handler               Handler
	resolver              PermissionResolver
	useServicePermissions bool
	contextFactory        ContextFactory
	validators            []Validator
	frozen                atomic.Bool
}

// Name returns the action name.
func (a *Action) Name() string {
	return a.name
}

// PermissionsFunc sets the permission resolver for this action. The resolver
// is evaluated lazily on every invocation, so the resolved set may depend on
// the call data. An explicit resolver always wins over the service's default
// permissions, even when it resolves to an empty set ("always allow").
//
// Setting a second resolver panics with ErrConfiguration.
func (a *Action) PermissionsFunc(resolver PermissionResolver) *Action {
	a.mustMutate("PermissionsFunc")
	if a.resolver != nil {
		panic(NewError(ErrConfiguration,
			"permission resolver already set for action").WithAction(a.name))
	}
	a.resolver = resolver
	return a
}

// Permissions sets a static permission list for this action. It is shorthand
// for PermissionsFunc with a resolver returning the given permissions on
// every call. Calling it with no arguments registers an explicit empty list,
// which means "always allow" and is distinct from not setting permissions at
// all.
func (a *Action) Permissions(perms ...Permission) *Action {
	return a.PermissionsFunc(StaticPermissions(perms...))
}

// WithoutServicePermissions opts this action out of the service's default
// permissions. With no explicit resolver set, the permission stage is skipped
// entirely and the action proceeds unconditionally to validation.
func (a *Action) WithoutServicePermissions() *Action {
	a.mustMutate("WithoutServicePermissions")
	a.useServicePermissions = false
	return a
}

// ContextFactory sets the validator context factory for this action. Exactly
// one factory is allowed; setting a second one panics with ErrConfiguration.
func (a *Action) ContextFactory(factory ContextFactory) *Action {
	a.mustMutate("ContextFactory")
	if a.contextFactory != nil {
		panic(NewError(ErrConfiguration,
			"validator context factory already set for action").WithAction(a.name))
	}
	a.contextFactory = factory
	return a
}

// Validate appends a validator. Validators accumulate in call order; there is
// no reordering and no removal. The declaration order is the execution order
// on every invocation.
func (a *Action) Validate(v Validator) *Action {
	a.mustMutate("Validate")
	if v == nil {
		panic(NewError(ErrConfiguration, "validator cannot be nil").WithAction(a.name))
	}
	a.validators = append(a.validators, v)
	return a
}

// Validators returns a copy of the validator list in declaration order.
func (a *Action) Validators() []Validator {
	out := make([]Validator, len(a.validators))
	copy(out, a.validators)
	return out
}

// Frozen reports whether the action has been dispatched at least once and is
// therefore closed to further registration.
func (a *Action) Frozen() bool {
	return a.frozen.Load()
}

// Using returns a derived copy of the action with the validator list replaced
// by the given validators. The registered action is left untouched; the copy
// is unfrozen and independent, intended for tests that need to invoke an
// action with substituted validators.
//
// Example:
//
//	variant := action.Using(stubValidator)
//	result, err := svc.InvokeAction(ctx, variant, data)
func (a *Action) Using(validators ...Validator) *Action {
	derived := &Action{
		name:                  a.name,
		handler:               a.handler,
		resolver:              a.resolver,
		useServicePermissions: a.useServicePermissions,
		contextFactory:        a.contextFactory,
		validators:            make([]Validator, len(validators)),
	}
	copy(derived.validators, validators)
	return derived
}

// Only returns a derived copy keeping only the validators whose name is in
// names. Validator names come from Named or from any validator implementing
// interface{ Name() string }; validators with the same name are not
// distinguished.
func (a *Action) Only(names ...string) *Action {
	var keep []Validator
	for _, v := range a.validators {
		if containsName(names, validatorName(v)) {
			keep = append(keep, v)
		}
	}
	return a.Using(keep...)
}

// Excluding returns a derived copy dropping the validators whose name is in
// names.
func (a *Action) Excluding(names ...string) *Action {
	var keep []Validator
	for _, v := range a.validators {
		if !containsName(names, validatorName(v)) {
			keep = append(keep, v)
		}
	}
	return a.Using(keep...)
}

// freeze closes the action to further registration. Called by the dispatcher
// on every invocation; only the first call changes state.
func (a *Action) freeze() {
	a.frozen.CompareAndSwap(false, true)
}

// mustMutate panics when the action is already frozen. Registration must
// complete before the first dispatch, never at call time.
func (a *Action) mustMutate(op string) {
	if a.frozen.Load() {
		panic(NewError(ErrConfiguration,
			fmt.Sprintf("%s called after action was frozen by its first invocation", op)).
			WithAction(a.name))
	}
}

// resolvePermissions applies the three-way resolution rule. The returned
// bool reports whether the permission stage applies at all: false means the
// action opted out with no explicit resolver and the stage is skipped.
func (a *Action) resolvePermissions(svc *Service, data any) ([]Permission, bool) {
	if a.resolver != nil {
		return a.resolver(svc, data), true
	}
	if a.useServicePermissions {
		return svc.DefaultPermissions(), true
	}
	return nil, false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
