package producer

import (
	"context"
	"time"

	"go-hms/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize = 50
	// maxBatchesPerTick bounds one drain so a repository that keeps
	// returning full batches cannot starve shutdown.
	maxBatchesPerTick = 20
)

// relay moves outbox rows to Kafka.
type relay struct {
	repo   kafka.OutboxRepository
	writer MessageWriter
	log    *zap.Logger
}

func newRelay(repo kafka.OutboxRepository, writer MessageWriter, logger *zap.Logger) *relay {
	return &relay{repo: repo, writer: writer, log: logger}
}

// ProcessOutboxEvents drains the outbox once at start and then on every
// tick until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	r := newRelay(repo, writer, logger.Named("kafka.producer.relay"))
	r.log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if sent, err := r.drain(ctx); err != nil {
			r.log.Error("drain outbox failed", zap.Int("sent", sent), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			r.log.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

// drain publishes batches back to back while they come back full.
func (r *relay) drain(ctx context.Context) (int, error) {
	total := 0
	for i := 0; i < maxBatchesPerTick && ctx.Err() == nil; i++ {
		sent, listed, err := r.publishBatch(ctx)
		total += sent
		if err != nil {
			return total, err
		}
		if listed < batchSize {
			break
		}
	}
	return total, nil
}

// publishBatch sends one batch and reports how many rows were sent and how
// many were listed. A failed publish marks that row failed and moves on.
func (r *relay) publishBatch(ctx context.Context) (sent, listed int, err error) {
	events, err := r.repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, 0, err
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.String("request_id", event.RequestID),
		}

		if err := publishEvent(ctx, r.writer, event); err != nil {
			r.log.Warn("publish outbox event failed", append(fields, zap.Int("retry_count", event.RetryCount), zap.Error(err))...)
			if markErr := r.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				r.log.Error("record outbox failure", append(fields, zap.Error(markErr))...)
			}
			continue
		}
		if err := r.repo.MarkSent(ctx, event.ID); err != nil {
			r.log.Error("mark outbox event sent", append(fields, zap.Error(err))...)
			continue
		}
		sent++
		r.log.Debug("outbox event sent", fields...)
	}

	r.log.Info("outbox batch published", zap.Int("listed", len(events)), zap.Int("sent", sent))
	return sent, len(events), nil
}
