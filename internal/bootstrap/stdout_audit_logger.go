package bootstrap

import (
	"context"
	"time"

	"go-hms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries as structured log lines.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	requestID := entry.RequestID
	if requestID == "" {
		requestID = contextutil.GetRequestID(ctx)
	}

	fields := []zap.Field{
		zap.String("timestamp", occurredAt.Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", requestID),
		zap.Int64("company_id", entry.CompanyID),
		zap.Any("meta", entry.Meta),
	}
	if entry.ActorID != nil {
		fields = append(fields, zap.Int64("actor_id", *entry.ActorID))
	}
	l.logger.Info("audit event", fields...)
}
