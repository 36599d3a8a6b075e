// Package response renders the JSON envelope shared by the storefront and
// back-office endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope around every JSON body. Data is set on success,
// Error on failure.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the catalog code, e.g. "COUPON_NOT_REDEEMABLE", and the
// field list of a failed validation.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data, "")
}

// Error writes a failure envelope. An empty message falls back to the status text.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
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
