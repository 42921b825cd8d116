package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go-hms/internal/bootstrap"
	"go-hms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeIdentityLifecycle turns identity lifecycle events into audit entries.
// Messages that cannot be decoded are committed and skipped.
func ConsumeIdentityLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.identity_lifecycle")
	log.Info("identity lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("identity lifecycle consumer stopped")
				return
			}
			log.Error("fetch identity lifecycle message failed", zap.Error(err))
			continue
		}

		entry, err := toAuditLog(msg)
		if err != nil {
			log.Error("decode identity lifecycle message failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if entry != nil {
			audit.Log(ctx, *entry)
		} else {
			log.Warn("unknown identity event type, skipping", zap.String("event_type", headerValue(msg, "event_type")))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit identity lifecycle message failed", zap.Error(err))
		}
	}
}

// toAuditLog returns nil for event types this consumer does not audit.
func toAuditLog(msg kafkago.Message) (*bootstrap.AuditLog, error) {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		return nil, err
	}
	requestID := headerValue(msg, "request_id")

	switch envelope.EventType {
	case events.EventUserRegistered:
		var e events.UserRegisteredEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			return nil, err
		}
		return &bootstrap.AuditLog{
			Action:     "USER_REGISTERED",
			Message:    fmt.Sprintf("user %d registered via %s", e.UserID, e.Flow),
			RequestID:  requestID,
			ActorID:    e.RegisteredBy,
			CompanyID:  e.CompanyID,
			OccurredAt: e.OccurredAt,
			Meta: map[string]any{
				"user_id":       e.UserID,
				"employee_id":   e.EmployeeID,
				"employee_code": e.EmployeeCode,
				"role_id":       e.RoleID,
				"flow":          e.Flow,
			},
		}, nil
	case events.EventCompanyProvisioned:
		var e events.CompanyProvisionedEvent
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			return nil, err
		}
		return &bootstrap.AuditLog{
			Action:     "COMPANY_PROVISIONED",
			Message:    "company " + strconv.FormatInt(e.CompanyID, 10) + " provisioned",
			RequestID:  requestID,
			CompanyID:  e.CompanyID,
			OccurredAt: e.OccurredAt,
			Meta: map[string]any{
				"company_name": e.CompanyName,
				"branch_id":    e.BranchID,
			},
		}, nil
	default:
		return nil, nil
	}
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
