package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hms/internal/bootstrap"
	"go-hms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReader serves msgs in order, then blocks until ctx is cancelled.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.msgs) > 0 {
		m := r.msgs[0]
		r.msgs = r.msgs[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()
	r.cancel()
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (a *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	a.entries = append(a.entries, entry)
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return kafkago.Message{
		Offset:  offset,
		Value:   body,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-9")}},
	}
}

func TestConsumeIdentityLifecycle(t *testing.T) {
	actor := int64(7)
	occurred := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel}
	reader.msgs = []kafkago.Message{
		message(t, 1, events.UserRegisteredEvent{
			EventType: events.EventUserRegistered, UserID: 11, EmployeeCode: "EMP-000001",
			CompanyID: 3, RegisteredBy: &actor, Flow: "register-user", OccurredAt: occurred,
		}),
		{Offset: 2, Value: []byte("not json")},
		message(t, 3, events.CompanyProvisionedEvent{
			EventType: events.EventCompanyProvisioned, CompanyID: 3, CompanyName: "Acme", BranchID: 4,
		}),
		message(t, 4, map[string]string{"event_type": "identity.something.else"}),
	}
	audit := &recordingAudit{}

	ConsumeIdentityLifecycle(ctx, reader, audit, zap.NewNop())

	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
	require.Len(t, audit.entries, 2)

	user := audit.entries[0]
	assert.Equal(t, "USER_REGISTERED", user.Action)
	assert.Equal(t, "req-9", user.RequestID)
	assert.Equal(t, int64(3), user.CompanyID)
	require.NotNil(t, user.ActorID)
	assert.Equal(t, actor, *user.ActorID)
	assert.Equal(t, occurred, user.OccurredAt)
	assert.Equal(t, "EMP-000001", user.Meta["employee_code"])

	company := audit.entries[1]
	assert.Equal(t, "COMPANY_PROVISIONED", company.Action)
	assert.Equal(t, "Acme", company.Meta["company_name"])
}

func TestToAuditLog_DecodeError(t *testing.T) {
	_, err := toAuditLog(kafkago.Message{Value: []byte(`{"event_type":"identity.user.registered","user_id":"x"}`)})
	var typeErr *json.UnmarshalTypeError
	assert.True(t, errors.As(err, &typeErr))
}
