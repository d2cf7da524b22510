package actionkit

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Outcome classifies how an invocation ended. Validation and handler
// failures carry the collaborator's own error; the outcome only records
// which stage terminated the pipeline.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomePermissionDenied Outcome = "permission_denied"
	OutcomeContextError     Outcome = "context_error"
	OutcomeValidationFailed Outcome = "validation_failed"
	OutcomeHandlerError     Outcome = "handler_error"
)

// InvocationLog records one dispatched action for compliance and debugging.
type InvocationLog struct {
	bun.BaseModel `bun:"table:action_invocation_log,alias:ail"`

	ID        string    `bun:"id,pk,type:uuid"`
	Timestamp time.Time `bun:"timestamp,notnull,default:current_timestamp"`

	// What was invoked
	Service string `bun:"service,notnull"`
	Action  string `bun:"action,notnull"`

	// How it ended
	Outcome    string `bun:"outcome,notnull"`
	Error      string `bun:"error"`
	DurationMS int64  `bun:"duration_ms,notnull"`

	// Request metadata for forensics
	ActorID   string `bun:"actor_id"`
	IPAddress string `bun:"ip_address"`
	UserAgent string `bun:"user_agent"`
	RequestID string `bun:"request_id"`

	// Additional context (JSON)
	Metadata map[string]any `bun:"metadata,type:jsonb"`
}

// InvocationEntry is what the dispatcher hands to an AuditLogger after each
// invocation.
type InvocationEntry struct {
	Service   string
	Action    string
	Outcome   Outcome
	Error     string
	Duration  time.Duration
	ActorID   string
	IPAddress string
	UserAgent string
	RequestID string
	Metadata  map[string]any
}

// ToModel converts an InvocationEntry to an InvocationLog model, assigning
// the row ID and timestamp.
func (e *InvocationEntry) ToModel() *InvocationLog {
	return &InvocationLog{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Service:    e.Service,
		Action:     e.Action,
		Outcome:    string(e.Outcome),
		Error:      e.Error,
		DurationMS: e.Duration.Milliseconds(),
		ActorID:    e.ActorID,
		IPAddress:  e.IPAddress,
		UserAgent:  e.UserAgent,
		RequestID:  e.RequestID,
		Metadata:   e.Metadata,
	}
}
