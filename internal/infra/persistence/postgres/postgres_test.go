package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, ok := poolWait(base, base)
	assert.False(t, ok)

	level, attrs, ok := poolWait(base, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avgWait", 5*time.Millisecond))

	level, _, ok = poolWait(base, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}
