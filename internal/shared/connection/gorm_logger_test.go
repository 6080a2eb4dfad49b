package connection_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-ems/internal/shared/connection"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedLogger() (*connection.GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return connection.NewGormLogger(zap.New(core)), logs
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()
	fc := func() (string, int64) { return `SELECT * FROM "employees"`, 2 }

	t.Run("sql error is logged", func(t *testing.T) {
		l, logs := newObservedLogger()

		l.Trace(ctx, time.Now(), fc, errors.New("connection refused"))

		assert.Equal(t, 1, logs.FilterMessage("sql error").Len())
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, logs := newObservedLogger()

		l.Trace(ctx, time.Now(), fc, gorm.ErrRecordNotFound)

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("slow query is a warning", func(t *testing.T) {
		l, logs := newObservedLogger()
		l.SlowThreshold = time.Millisecond

		l.Trace(ctx, time.Now().Add(-time.Second), fc, nil)

		entries := logs.FilterMessage("slow sql").All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, logs := newObservedLogger()
		silent := l.LogMode(gormlogger.Silent)

		silent.Trace(ctx, time.Now(), fc, errors.New("boom"))

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("info mode logs every statement", func(t *testing.T) {
		l, logs := newObservedLogger()
		verbose := l.LogMode(gormlogger.Info)

		verbose.Trace(ctx, time.Now(), fc, nil)

		assert.Equal(t, 1, logs.FilterMessage("sql").Len())
	})
}
