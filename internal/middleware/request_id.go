package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	maxTraceIDLength = 128
)

// RequestID assigns every request a trace ID, reusing a well-formed
// X-Trace-ID sent by the client, and echoes it in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if !acceptableTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// acceptableTraceID rejects empty, oversized or non-printable ids so they
// never reach logs or headers verbatim.
func acceptableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}

// GetTraceID extracts the trace ID from the Echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
