package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go-hms/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestNewOutboxEvent(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")

	event, err := NewOutboxEvent(ctx, "hms.identity.lifecycle.v1", "identity.user.registered", "user", "42",
		map[string]any{"user_id": 42})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, OutboxStatusPending, event.Status)
	assert.Equal(t, "42", event.AggregateID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.EqualValues(t, 42, payload["user_id"])
	assert.NoError(t, ValidateOutboxEvent(event))

	_, err = NewOutboxEvent(ctx, "t", "e", "user", "1", make(chan int))
	assert.Error(t, err)
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{ID: "id", Topic: "t", EventType: "e", Payload: []byte(`{}`), Status: OutboxStatusPending}

	tests := []struct {
		name   string
		mutate func(e *OutboxEvent)
		errMsg string
	}{
		{"Valid", func(e *OutboxEvent) {}, ""},
		{"Missing ID", func(e *OutboxEvent) { e.ID = "" }, "outbox id is required"},
		{"Missing Topic", func(e *OutboxEvent) { e.Topic = "" }, "outbox topic is required"},
		{"Missing Event Type", func(e *OutboxEvent) { e.EventType = "" }, "outbox event type is required"},
		{"Empty Payload", func(e *OutboxEvent) { e.Payload = nil }, "outbox payload is required"},
		{"Unknown Status", func(e *OutboxEvent) { e.Status = "queued" }, "invalid outbox status: queued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := ValidateOutboxEvent(e)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepository(db)

	t.Run("Insert", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO "outbox_events"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), OutboxEvent{
			ID: "9f2c", Topic: "t", EventType: "e", AggregateType: "user", AggregateID: "1",
			Payload: []byte(`{"a":1}`), Status: OutboxStatusPending,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid Event Is Not Written", func(t *testing.T) {
		err := repo.Create(context.Background(), OutboxEvent{ID: "x"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "outbox_events" WHERE status IN \(\$1,\$2\) AND \(next_retry_at IS NULL OR next_retry_at <= NOW\(\)\) ORDER BY created_at ASC LIMIT \$3`).
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_type", "topic", "payload", "status", "retry_count", "created_at"}).
			AddRow("a", "identity.user.registered", "hms.identity.lifecycle.v1", []byte(`{}`), OutboxStatusPending, 0, now).
			AddRow("b", "identity.user.registered", "hms.identity.lifecycle.v1", []byte(`{}`), OutboxStatusFailed, 2, now))

	events, err := repo.ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepository(db)

	mock.ExpectExec(`UPDATE "outbox_events" SET .*"processed_at"=NOW\(\).*"status"=\$\d.*WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkSent(context.Background(), "a"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepository(db)

	reason := strings.Repeat("x", 800)
	mock.ExpectExec(`UPDATE "outbox_events" SET .*"next_retry_at"=NOW\(\) \+ \(LEAST\(retry_count \+ 1, 10\) \* INTERVAL '15 seconds'\).*"retry_count"=retry_count \+ 1.*WHERE id = \$\d`).
		WithArgs(strings.Repeat("x", maxErrorMessageLength), OutboxStatusFailed, "a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), "a", reason))
	assert.NoError(t, mock.ExpectationsWereMet())
}
