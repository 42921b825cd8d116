package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-hms/internal/bootstrap"
	"go-hms/internal/config"
	"go-hms/internal/events"
	"go-hms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const identityAuditGroup = "go-hms-identity-audit"

// RunConsumer writes identity lifecycle events to the audit log until
// SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.IdentityLifecycleTopic,
		GroupID:        identityAuditGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeIdentityLifecycle(ctx, reader, bootstrap.NewStdoutAuditLogger(logger), logger)

	logger.Info("consumer shutting down")
	return nil
}
