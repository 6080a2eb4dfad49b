package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows exhausted their attempts and are left for an operator.
	OutboxStatusDead = "dead"

	maxErrorMessageLen = 500
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
}

// RetryPolicy controls how a failed publish is rescheduled. Attempt n waits
// n*Backoff; the row is dead-lettered once MaxAttempts publishes have failed.
type RetryPolicy struct {
	Backoff     time.Duration
	MaxAttempts int
}

var DefaultRetryPolicy = RetryPolicy{Backoff: 15 * time.Second, MaxAttempts: 10}

// Next returns the status and retry time for a row that has now failed attempts times.
func (p RetryPolicy) Next(attempts int, now time.Time) (string, *time.Time) {
	if p.MaxAttempts > 0 && attempts >= p.MaxAttempts {
		return OutboxStatusDead, nil
	}
	at := now.Add(time.Duration(attempts) * p.Backoff)
	return OutboxStatusFailed, &at
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	// ListPending returns up to limit rows that are due for publishing, oldest first.
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	// MarkFailed records a failed publish of event and returns the row's new status.
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) (string, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type outboxRepository struct {
	db     *sql.DB
	tx     *sql.Tx
	policy RetryPolicy
	now    func() time.Time
}

func NewOutboxRepository(db *sql.DB, policy RetryPolicy) OutboxRepository {
	if policy.Backoff <= 0 {
		policy.Backoff = DefaultRetryPolicy.Backoff
	}
	return &outboxRepository{db: db, policy: policy, now: time.Now}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx, policy: r.policy, now: r.now}
}

func (r *outboxRepository) conn() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const insertOutboxEvent = `INSERT INTO outbox_events
	(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	_, err := r.conn().ExecContext(ctx, insertOutboxEvent,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event %s: %w", event.ID, err)
	}
	return nil
}

// Rows of one employee share an aggregate id; created_at then id keeps their
// relative order stable across batches.
const selectDueOutboxEvents = `SELECT id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status, retry_count
FROM outbox_events
WHERE status = $1 OR (status = $2 AND next_retry_at <= $3)
ORDER BY created_at, id
LIMIT $4`

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, selectDueOutboxEvents,
		OutboxStatusPending, OutboxStatusFailed, r.now().UTC(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list due outbox events: %w", err)
	}
	defer rows.Close()

	var due []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		err := rows.Scan(&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount)
		if err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		due = append(due, e)
	}
	return due, rows.Err()
}

const markOutboxSent = `UPDATE outbox_events
SET status = $2, processed_at = $3, updated_at = $3, error_message = NULL, next_retry_at = NULL
WHERE id = $1`

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.conn().ExecContext(ctx, markOutboxSent, id, OutboxStatusSent, r.now().UTC())
	return err
}

const markOutboxFailed = `UPDATE outbox_events
SET status = $2, retry_count = $3, next_retry_at = $4, error_message = $5, updated_at = $6
WHERE id = $1`

func (r *outboxRepository) MarkFailed(ctx context.Context, event OutboxEvent, reason string) (string, error) {
	now := r.now().UTC()
	attempts := event.RetryCount + 1
	status, retryAt := r.policy.Next(attempts, now)

	_, err := r.conn().ExecContext(ctx, markOutboxFailed,
		event.ID, status, attempts, retryAt, truncate(reason, maxErrorMessageLen), now,
	)
	if err != nil {
		return event.Status, err
	}
	return status, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return errors.New("outbox id is required")
	case event.Topic == "":
		return errors.New("outbox topic is required")
	case len(event.Payload) == 0:
		return errors.New("outbox payload is required")
	case event.Status != OutboxStatusPending:
		return fmt.Errorf("new outbox events must be pending, got %q", event.Status)
	}
	return nil
}
