package actionkit

import "time"

// InvocationLogFilter provides options for filtering audit log queries.
type InvocationLogFilter struct {
	// Filter by service name
	Service string

	// Filter by action name
	Action string

	// Filter by outcome
	Outcome Outcome

	// Filter by actor who triggered the invocation
	ActorID string

	// Filter by request correlation ID
	RequestID string

	// Filter by time range
	Since time.Time
	Until time.Time

	// Pagination
	Limit  int
	Offset int
}

// NewInvocationLogFilter creates a filter with default values.
func NewInvocationLogFilter() InvocationLogFilter {
	return InvocationLogFilter{
		Limit: 100,
	}
}

// WithService sets the service name filter.
func (f InvocationLogFilter) WithService(service string) InvocationLogFilter {
	f.Service = service
	return f
}

// WithAction sets the action name filter.
func (f InvocationLogFilter) WithAction(action string) InvocationLogFilter {
	f.Action = action
	return f
}

// WithOutcome sets the outcome filter.
func (f InvocationLogFilter) WithOutcome(outcome Outcome) InvocationLogFilter {
	f.Outcome = outcome
	return f
}

// WithActor sets the actor ID filter.
func (f InvocationLogFilter) WithActor(actorID string) InvocationLogFilter {
	f.ActorID = actorID
	return f
}

// WithRequestID sets the request ID filter.
func (f InvocationLogFilter) WithRequestID(requestID string) InvocationLogFilter {
	f.RequestID = requestID
	return f
}

// WithTimeRange sets the time range filter.
func (f InvocationLogFilter) WithTimeRange(since, until time.Time) InvocationLogFilter {
	f.Since = since
	f.Until = until
	return f
}

// WithPagination sets the pagination options.
func (f InvocationLogFilter) WithPagination(limit, offset int) InvocationLogFilter {
	f.Limit = limit
	f.Offset = offset
	return f
}
