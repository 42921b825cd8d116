package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-hms/internal/config"
	"go-hms/internal/messaging/kafka"
	"go-hms/internal/messaging/kafka/producer"
	"go-hms/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := connection.ConnectGORMWithRetry(ctx, postgresConfig(cfg), cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	writer, err := connection.ConnectKafkaWithRetry(ctx, cfg.KafkaBroker, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	defer writer.Close()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(db), writer, logger, cfg.OutboxPollInterval)

	logger.Info("worker shutting down")
	return nil
}
