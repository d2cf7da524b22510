package actionkit

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// DBAuditLogger persists the invocation audit trail through dbkit.
//
// Attach it to a dispatcher to record every dispatched action:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	dispatcher := actionkit.NewDispatcher(
//	    actionkit.WithAuditLogger(actionkit.NewDBAuditLogger(db)),
//	)
//
// Run Migrations with db.Migrate before first use.
type DBAuditLogger struct {
	db dbkit.IDB
}

// NewDBAuditLogger creates a database-backed audit logger.
func NewDBAuditLogger(db dbkit.IDB) *DBAuditLogger {
	return &DBAuditLogger{db: db}
}

// LogInvocation implements AuditLogger.
func (l *DBAuditLogger) LogInvocation(ctx context.Context, entry *InvocationEntry) error {
	_, err := l.db.NewInsert().Model(entry.ToModel()).Exec(ctx)
	return dbkit.WithErr1(err, "LogInvocation").Err()
}

// GetInvocationLog retrieves audit entries with optional filters, newest
// first.
func (l *DBAuditLogger) GetInvocationLog(ctx context.Context, filter InvocationLogFilter) ([]InvocationLog, error) {
	var logs []InvocationLog
	q := l.db.NewSelect().Model(&logs)
	if filter.Service != "" {
		q = q.Where("service = ?", filter.Service)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Outcome != "" {
		q = q.Where("outcome = ?", string(filter.Outcome))
	}
	if filter.ActorID != "" {
		q = q.Where("actor_id = ?", filter.ActorID)
	}
	if filter.RequestID != "" {
		q = q.Where("request_id = ?", filter.RequestID)
	}
	if !filter.Since.IsZero() {
		q = q.Where("timestamp >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		q = q.Where("timestamp <= ?", filter.Until)
	}
	q = q.Order("timestamp DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	err := dbkit.WithErr1(q.Scan(ctx), "GetInvocationLog").Err()
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// Migrations returns all database migrations required for the audit trail.
// Use db.Migrate(ctx, actionkit.Migrations()) to run them.
func Migrations() []dbkit.Migration {
	return []dbkit.Migration{
		{
			ID:          "actionkit-001",
			Description: "Create action_invocation_log table",
			SQL: `
                CREATE TABLE IF NOT EXISTS action_invocation_log (
                    id UUID PRIMARY KEY,
                    timestamp TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
                    service TEXT NOT NULL,
                    action TEXT NOT NULL,
                    outcome TEXT NOT NULL,
                    error TEXT,
                    duration_ms BIGINT NOT NULL,
                    actor_id TEXT,
                    ip_address TEXT,
                    user_agent TEXT,
                    request_id TEXT,
                    metadata JSONB
                )`,
		},
		{
			ID:          "actionkit-002",
			Description: "Index action_invocation_log lookups",
			SQL: `
                CREATE INDEX IF NOT EXISTS idx_invocation_log_service_action
                    ON action_invocation_log (service, action, timestamp DESC)`,
		},
	}
}
