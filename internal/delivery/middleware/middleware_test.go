package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storerating/config"
	deliverycontext "storerating/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID string
	}{
		{"client id reused", "abc-123", "abc-123"},
		{"generated when missing", "", ""},
		{"generated when too long", strings.Repeat("x", maxRequestIDLength+1), ""},
		{"generated when it has spaces", "two words", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newLoggedEcho(&buf, false)

			var ctxID string
			e.GET("/", func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			if tt.expectID != "" {
				assert.Equal(t, tt.expectID, got)
			} else {
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestLoggerMiddleware_LogsRenderedStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, true)
	e.GET("/stores/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	req := httptest.NewRequest(http.MethodGet, "/stores/42?page=2", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "HTTP Request", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "/stores/:id", entry["route"])
	assert.Equal(t, "page=2", entry["query"])
	assert.Equal(t, "req-7", entry["request_id"])
}

func TestLoggerMiddleware_SilentOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, false)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}
