package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/stores", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID_StableWhenGenerated(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), slog.New(slog.NewTextHandler(&buf, nil)))))

	EnrichLogger(c, slog.String("user_id", "u-1"))
	GetLogger(c.Request().Context()).Info("rated")

	assert.Contains(t, buf.String(), "user_id=u-1")
}

func TestEnrichLogger_NoLogger(t *testing.T) {
	c := newEchoContext()

	EnrichLogger(c, slog.String("user_id", "u-1"))

	assert.Nil(t, GetLogger(c.Request().Context()))
}
