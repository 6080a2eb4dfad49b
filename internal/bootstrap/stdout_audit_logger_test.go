package bootstrap_test

import (
	"context"
	"testing"

	"go-ems/internal/bootstrap"
	"go-ems/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "REQ-7")
	l.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_ADDED",
		Message: "employee E1 added",
		Meta:    map[string]any{"emp_id": "E1"},
	})

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "EMPLOYEE_ADDED", fields["action"])
	assert.Equal(t, "employee E1 added", fields["message"])
	assert.Equal(t, "REQ-7", fields["request_id"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}
