// Package middleware contains the echo middlewares specific to the HTTP delivery.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "marvel/internal/delivery/context"
	"marvel/internal/delivery/http/response"
	domainerrors "marvel/internal/domain/errors"
	"marvel/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware translates handler errors into the error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = response.AppError(c, domainerrors.ErrRouteNotFound)
		case http.StatusTooManyRequests:
			_ = response.AppError(c, domainerrors.ErrTooManyRequests)
		default:
			message := http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok && msg != "" {
				message = msg
			}
			_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")
		}

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.AppError(c, domainerrors.ErrInternalError)
}
