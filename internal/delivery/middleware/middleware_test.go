package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marvel/config"
	deliverycontext "marvel/internal/delivery/context"
	domainerrors "marvel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var seen string
	h := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
		seen = deliverycontext.RequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	require.NoError(t, h(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, seen, deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "from-client")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(echo.Context) error { return nil })

	require.NoError(t, h(c))
	assert.Equal(t, "from-client", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLine  bool
		wantLevel string
		wantCode  int
	}{
		{
			name:  "disabled",
			debug: false,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
		{
			name:  "success",
			debug: true,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantLine:  true,
			wantLevel: "INFO",
			wantCode:  http.StatusOK,
		},
		{
			name:  "app error",
			debug: true,
			handler: func(echo.Context) error {
				return domainerrors.ErrUserNotFound
			},
			wantLine:  true,
			wantLevel: "WARN",
			wantCode:  http.StatusNotFound,
		},
		{
			name:  "unknown error",
			debug: true,
			handler: func(echo.Context) error {
				return assert.AnError
			},
			wantLine:  true,
			wantLevel: "ERROR",
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/favorites?token=secret", nil), httptest.NewRecorder())

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			if !tt.wantLine {
				assert.Empty(t, buf.String())

				return
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.InDelta(t, tt.wantCode, line["status"], 0)
			assert.Equal(t, "/favorites", line["uri"])
			assert.False(t, strings.Contains(buf.String(), "secret"))
		})
	}
}
