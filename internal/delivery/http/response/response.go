// Package response renders the JSON bodies of the HTTP delivery.
// Successful calls return their resource directly; failures share one envelope.
package response

import (
	"encoding/json"
	"net/http"

	domainerrors "marvel/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response is the error envelope.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-facing message
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "USER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Only set for 4xx errors
}

// JSON writes data as the whole response body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Raw relays an already encoded JSON document.
func Raw(c echo.Context, statusCode int, body json.RawMessage) error {
	return c.JSONBlob(statusCode, body)
}

// Text writes a plain text body.
func Text(c echo.Context, statusCode int, body string) error {
	return c.String(statusCode, body)
}

// Error writes the error envelope. Details are dropped for 5xx responses.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// AppError writes the envelope of an application error.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), err.Details())
}
