package kafka_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-ems/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "0b8f0f52-1f1e-4a47-9e51-3d1b8c1f0001",
		RequestID:     "REQ-1",
		AggregateType: "employee",
		AggregateID:   "6a4f9d1c-4b3e-4a55-9a7e-0d7b1c2e0002",
		EventType:     "employee_added",
		Topic:         "ems.employee.lifecycle.v1",
		Payload:       []byte(`{"emp_id":"E1"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inside transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ev := validEvent()
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO outbox_events`).
			WithArgs(ev.ID, ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, ev.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.BeginTx(ctx, nil)
		require.NoError(t, err)

		repo := kafka.NewOutboxRepository(db, kafka.DefaultRetryPolicy).WithTx(tx)
		require.NoError(t, repo.Create(ctx, ev))
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid event never reaches the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ev := validEvent()
		ev.Payload = nil

		err = kafka.NewOutboxRepository(db, kafka.DefaultRetryPolicy).Create(ctx, ev)

		assert.EqualError(t, err, "outbox payload is required")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count",
	}).AddRow("id-1", "REQ-1", "employee", "agg-1", "employee_added", "ems.employee.lifecycle.v1", []byte(`{}`), "pending", 0).
		AddRow("id-2", "", "employee", "agg-2", "employee_added", "ems.employee.lifecycle.v1", []byte(`{}`), "failed", 2)

	mock.ExpectQuery(`FROM outbox_events\s+WHERE status = \$1 OR \(status = \$2 AND next_retry_at <= \$3\)\s+ORDER BY created_at, id`).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, sqlmock.AnyArg(), 10).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db, kafka.DefaultRetryPolicy).ListPending(ctx, 10)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "REQ-1", events[0].RequestID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE outbox_events`).
		WithArgs("id-1", kafka.OutboxStatusSent, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db, kafka.DefaultRetryPolicy).MarkSent(context.Background(), "id-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	policy := kafka.RetryPolicy{Backoff: time.Minute, MaxAttempts: 3}

	t.Run("reschedules while attempts remain", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ev := validEvent()
		ev.RetryCount = 1
		mock.ExpectExec(`UPDATE outbox_events`).
			WithArgs(ev.ID, kafka.OutboxStatusFailed, 2, sqlmock.AnyArg(), "broker down", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		status, err := kafka.NewOutboxRepository(db, policy).MarkFailed(ctx, ev, "broker down")

		require.NoError(t, err)
		assert.Equal(t, kafka.OutboxStatusFailed, status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dead after the last attempt", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ev := validEvent()
		ev.RetryCount = 2
		mock.ExpectExec(`UPDATE outbox_events`).
			WithArgs(ev.ID, kafka.OutboxStatusDead, 3, nil, "broker down", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		status, err := kafka.NewOutboxRepository(db, policy).MarkFailed(ctx, ev, "broker down")

		require.NoError(t, err)
		assert.Equal(t, kafka.OutboxStatusDead, status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("long reasons are cut to the column size", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE outbox_events`).
			WithArgs("id-1", kafka.OutboxStatusFailed, 1, sqlmock.AnyArg(), strings.Repeat("x", 500), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ev := validEvent()
		ev.ID = "id-1"
		_, err = kafka.NewOutboxRepository(db, policy).MarkFailed(ctx, ev, strings.Repeat("x", 600))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error keeps the previous status", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE outbox_events`).WillReturnError(errors.New("db gone"))

		status, err := kafka.NewOutboxRepository(db, policy).MarkFailed(ctx, validEvent(), "broker down")

		assert.Error(t, err)
		assert.Equal(t, kafka.OutboxStatusPending, status)
	})
}

func TestRetryPolicy_Next(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	policy := kafka.RetryPolicy{Backoff: 15 * time.Second, MaxAttempts: 10}

	status, at := policy.Next(1, now)
	assert.Equal(t, kafka.OutboxStatusFailed, status)
	require.NotNil(t, at)
	assert.Equal(t, now.Add(15*time.Second), *at)

	_, at = policy.Next(4, now)
	assert.Equal(t, now.Add(time.Minute), *at)

	status, at = policy.Next(10, now)
	assert.Equal(t, kafka.OutboxStatusDead, status)
	assert.Nil(t, at)

	unbounded := kafka.RetryPolicy{Backoff: time.Second}
	status, _ = unbounded.Next(1000, now)
	assert.Equal(t, kafka.OutboxStatusFailed, status)
}

func TestValidateOutboxEvent(t *testing.T) {
	ev := validEvent()
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))

	ev.Status = kafka.OutboxStatusSent
	assert.EqualError(t, kafka.ValidateOutboxEvent(ev), `new outbox events must be pending, got "sent"`)

	ev = validEvent()
	ev.ID = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(ev), "outbox id is required")

	ev = validEvent()
	ev.Topic = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(ev), "outbox topic is required")
}
