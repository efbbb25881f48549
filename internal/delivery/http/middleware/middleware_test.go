package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marvel/config"
	domainerrors "marvel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "app error",
			err:      domainerrors.ErrEmailAlreadyUsed,
			wantCode: http.StatusConflict,
			wantBody: `{"success":false,"code":409,"message":"Cet email est déjà utilisé par un autre utilisateur.","error":{"code":"EMAIL_ALREADY_USED"}}`,
		},
		{
			name:     "echo not found",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"code":404,"message":"Désolé, cette route n'est pas disponible.","error":{"code":"ROUTE_NOT_FOUND"}}`,
		},
		{
			name:     "echo method not allowed",
			err:      echo.ErrMethodNotAllowed,
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"code":404,"message":"Désolé, cette route n'est pas disponible.","error":{"code":"ROUTE_NOT_FOUND"}}`,
		},
		{
			name:     "echo body too large",
			err:      echo.ErrStatusRequestEntityTooLarge,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"success":false,"code":413,"message":"Request Entity Too Large","error":{"code":"HTTP_ERROR"}}`,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"code":500,"message":"Erreur interne du serveur.","error":{"code":"INTERNAL_ERROR"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func newRateLimitMiddleware(rpm, burst int, now *time.Time) *RateLimitMiddleware {
	cfg := &config.Config{Auth: &config.AuthConfig{
		RateLimit: config.RateLimitConfig{RequestsPerMinute: rpm, Burst: burst},
	}}
	m := NewRateLimitMiddleware(discardLogger(), cfg)
	m.now = func() time.Time { return *now }

	return m
}

func callFrom(h echo.HandlerFunc, ip string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()

	return rec, h(echo.New().NewContext(req, rec))
}

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Now()
	m := newRateLimitMiddleware(60, 2, &now)
	h := m.Limit(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for range 2 {
		_, err := callFrom(h, "10.0.0.1")
		require.NoError(t, err)
	}

	rec, err := callFrom(h, "10.0.0.1")
	require.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// Other clients keep their own budget.
	_, err = callFrom(h, "10.0.0.2")
	require.NoError(t, err)

	// One token per second at 60 rpm.
	now = now.Add(time.Second)
	_, err = callFrom(h, "10.0.0.1")
	require.NoError(t, err)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	now := time.Now()
	m := newRateLimitMiddleware(0, 0, &now)
	assert.False(t, m.Enabled())

	h := m.Limit(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	for range 100 {
		_, err := callFrom(h, "10.0.0.1")
		require.NoError(t, err)
	}
}

func TestRateLimitMiddleware_CleanupDropsIdleClients(t *testing.T) {
	now := time.Now()
	m := newRateLimitMiddleware(60, 1, &now)
	h := m.Limit(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	_, err := callFrom(h, "10.0.0.1")
	require.NoError(t, err)

	now = now.Add(limiterCleanupInterval + time.Second)
	_, err = callFrom(h, "10.0.0.2")
	require.NoError(t, err)

	_, ok := m.limiters.Load("10.0.0.1")
	assert.False(t, ok)
}
