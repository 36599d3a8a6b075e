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

func TestWithLoggerAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLoggerAttrs(WithLogger(context.Background(), base), slog.String("user_id", "u-1"))
	GetLoggerOrDefault(ctx, nil).Info("hello")

	assert.Contains(t, buf.String(), `"user_id":"u-1"`)
}

func TestWithLoggerAttrs_NoLogger(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ctx, WithLoggerAttrs(ctx, slog.String("user_id", "u-1")))
	assert.Nil(t, GetLogger(ctx))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}
