package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(level slog.Level, debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		elapsed  time.Duration
		err      error
		contains string
		empty    bool
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound, empty: true},
		{name: "duplicate key is debug", err: gorm.ErrDuplicatedKey, contains: "GORM duplicate key"},
		{name: "failure is error", err: errors.New("connection reset"), contains: "GORM query failed"},
		{name: "slow query is warned", elapsed: time.Second, contains: "GORM slow query"},
		{name: "fast query hidden outside debug", empty: true},
		{name: "fast query shown in debug", debug: true, contains: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(slog.LevelDebug, tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlRows("SELECT 1", 1), tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_PrefersRequestLogger(t *testing.T) {
	l, base := newBufferedGormLogger(slog.LevelDebug, false)
	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlRows("UPDATE barcode_items", 0), errors.New("deadlock detected"))

	assert.Empty(t, base.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-42")
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	l, buf := newBufferedGormLogger(slog.LevelDebug, true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlRows("SELECT 1", 1), errors.New("boom"))
	l.LogMode(logger.Silent).Info(context.Background(), "migrating %s", "customers")

	assert.Empty(t, buf.String())
}
