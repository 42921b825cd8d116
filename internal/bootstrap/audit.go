package bootstrap

import (
	"context"
	"time"
)

// AuditLog is one entry of the audit trail.
type AuditLog struct {
	Action     string
	Message    string
	RequestID  string
	ActorID    *int64
	CompanyID  int64
	OccurredAt time.Time
	Meta       map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
