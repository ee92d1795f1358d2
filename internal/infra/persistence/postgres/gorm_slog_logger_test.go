package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"storerating/config"
	deliverycontext "storerating/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBufferedGormLogger(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	l, _ := newBufferedGormLogger(&config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Second}})
	assert.Equal(t, time.Second, l.slowThreshold)

	l, _ = newBufferedGormLogger(nil)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(nil)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Zero(t, buf.Len())
	})

	t.Run("unique violation logged as warning", func(t *testing.T) {
		l, buf := newBufferedGormLogger(nil)
		err := errors.WithStack(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_ratings_user_store"})
		l.Trace(context.Background(), time.Now(), sqlFn, err)

		entry := decodeLogLine(t, buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "idx_ratings_user_store", entry["constraint"])
	})

	t.Run("other errors logged as error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(nil)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

		entry := decodeLogLine(t, buf)
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, "GORM query failed", entry["msg"])
		assert.Equal(t, "SELECT 1", entry["sql"])
	})

	t.Run("slow query", func(t *testing.T) {
		l, buf := newBufferedGormLogger(nil)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		entry := decodeLogLine(t, buf)
		assert.Equal(t, "GORM slow query", entry["msg"])
	})

	t.Run("fast query only logged in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(nil)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Zero(t, buf.Len())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = newBufferedGormLogger(cfg)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Equal(t, "GORM query", decodeLogLine(t, buf)["msg"])
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(nil)

	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewJSONHandler(reqBuf, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	entry := decodeLogLine(t, reqBuf)
	assert.Equal(t, "req-7", entry["request_id"])
}
