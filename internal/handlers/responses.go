package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses come in two shapes:
//
// 1. Reads (dashboard, lists) fail with the standard ErrorResponse envelope,
//    built by SendError or SendAppError.
//
// 2. Writes always answer with dto.OperationResult, 200 on success and
//    400 on any failure, built by SendResult. Storage failures included.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendAppError reports an error returned by a service read. Validation
// messages reach the client; storage details do not.
func SendAppError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse := errors.FromAppError(err, traceID)
	if errorResponse.IsServerError() {
		slog.Error("request failed", "trace_id", traceID, "path", c.Path(), "error", err)
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendResult writes the outcome of a mutating operation.
func SendResult(c echo.Context, result dto.OperationResult) error {
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	return c.JSON(status, result)
}

// sendInvalidRequest rejects a write whose body or parameters failed
// binding or validation, in the same shape as a failed operation.
func sendInvalidRequest(c echo.Context, code errors.ErrorCode, messages []string) error {
	return SendResult(c, dto.Failed(code, strings.Join(messages, "; ")))
}
