package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic in a handler into a SYSTEM_001 response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				apiErrorsTotal.WithLabelValues(string(errors.SystemInternalError), c.Path(), "500").Inc()

				if c.Response().Committed {
					return
				}
				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
					slog.Error("failed to send panic recovery response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
