package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-ems/internal/bootstrap"
	"go-ems/internal/events"
	"go-ems/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// FetchRetryDelay is how long the consumer waits after a failed fetch.
var FetchRetryDelay = time.Second

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeEmployeeLifecycle writes an audit entry for every employee_added event until ctx is done.
// Undecodable and unknown messages are committed so they do not block the partition.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed",
				zap.Duration("retry_in", FetchRetryDelay),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				log.Info("employee lifecycle consumer stopped")
				return
			case <-time.After(FetchRetryDelay):
			}
			continue
		}

		handleMessage(ctx, msg, auditLogger, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, auditLogger bootstrap.AuditLogger, log *zap.Logger) {
	var event events.EmployeeAddedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	if event.EventType != events.EmployeeAddedEventType {
		log.Debug("skipping employee lifecycle event", zap.String("event_type", event.EventType))
		return
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}

	auditLogger.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_ADDED",
		Message: "Employee " + event.EmpID + " added",
		Meta: map[string]any{
			"employee_id": event.EmployeeID,
			"emp_id":      event.EmpID,
			"email":       event.Email,
			"department":  event.Department,
			"occurred_at": event.OccurredAt,
		},
	})

	log.Info("employee added event audited",
		zap.String("employee_id", event.EmployeeID),
		zap.String("emp_id", event.EmpID),
	)
}
