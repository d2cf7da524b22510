// Package actionkit provides a declarative action dispatch pipeline for
// service-oriented business logic.
//
// ActionKit lets an application define a unit of business logic (an "action")
// once and invoke it uniformly from multiple front-ends (HTTP handlers, task
// workers, CLI commands) without coupling the logic to any of them. Every
// invocation runs the same ordered pipeline: permission evaluation, validator
// context construction, validator chain, handler.
//
// # Core Concepts
//
// Action: one registered, callable unit of business logic with its own
// permission and validation pipeline. Actions are assembled declaratively at
// startup through a fluent builder and frozen at their first invocation.
//
// Service: a named grouping of actions sharing an opaque business context,
// created once per logical unit of work (typically once per request).
//
// Permission: a capability gating whether an action may proceed. A nil return
// from Check allows the call, any error denies it.
//
// Validator: a capability inspecting call data before the handler runs.
// Validators execute strictly in declaration order and communicate outward
// only by returning an error or by mutating the per-call validator context.
//
// Dispatcher: the stateless orchestration routine executing the
// permission -> context -> validation -> handler sequence.
//
// # Basic Usage
//
//	// 1. Define your actions (at application startup)
//	registry := actionkit.NewRegistry()
//
//	registry.Register("create_order", createOrder).
//	    Permissions(Authenticated{}, CanCreateOrders{}).
//	    Validate(actionkit.Named("order_items", validateOrderItems)).
//	    Validate(actionkit.Named("shipping_date", validateShippingDate))
//
//	registry.Register("get_orders", getOrders)
//
//	registry.Register("send_daily_emails", sendDailyEmails).
//	    WithoutServicePermissions()
//
//	// 2. Create a service per unit of work
//	svc := actionkit.NewService(registry, actionkit.Config{
//	    Name:               "orders",
//	    Context:            &OrderContext{User: user},
//	    DefaultPermissions: []actionkit.Permission{Authenticated{}},
//	})
//
//	// 3. Invoke from any front-end
//	result, err := svc.Invoke(ctx, "create_order", order)
//	if actionkit.IsPermissionDenied(err) {
//	    // map to an authorization response
//	}
//
// # Permission Resolution
//
// Permissions are resolved per call, first matching source wins:
//
//  1. An explicit permission resolver on the action (even one resolving to an
//     empty set, which means "always allow").
//  2. The service's DefaultPermissions, unless the action opted out with
//     WithoutServicePermissions.
//  3. Opted out with no resolver: the permission stage is skipped entirely.
//
// The first permission that denies aborts the pipeline; the dispatcher
// surfaces the failure as ErrPermissionDenied with the permission's own
// error preserved as the cause.
//
// # Failure Semantics
//
// Validator and handler errors propagate to the caller unmodified; the
// framework never wraps or reinterprets them, so richer validation libraries
// stay the source of truth for error detail. No stage is retried, nothing is
// recovered locally, and no compensation is performed for earlier validators'
// context mutations.
//
// # Observability
//
// The dispatcher optionally logs stage outcomes through zerolog, records
// prometheus metrics through a Collector, and persists an invocation audit
// trail through an AuditLogger (a dbkit/bun backed implementation is
// provided).
package actionkit
