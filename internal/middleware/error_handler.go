package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler formats errors that escape a handler (unknown
// routes, bad methods, raw service errors) as standardized error responses.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var (
		errorResponse  *errors.ErrorResponse
		httpStatus     int
		echoErr        *echo.HTTPError
		validationErrs validator.ValidationErrors
	)

	switch {
	case stderrors.As(err, &echoErr):
		errorResponse = errors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	case stderrors.As(err, &validationErrs):
		errorResponse = errors.NewValidationErrorFromList(validation.Messages(validationErrs), traceID)
		httpStatus = http.StatusBadRequest
	default:
		if _, ok := errors.AsAppError(err); ok {
			errorResponse = errors.FromAppError(err, traceID)
		} else {
			errorResponse, _ = errors.WrapSystemError(err, traceID)
		}
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "http error",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if c.Request().Method == http.MethodHead {
		if sendErr := c.NoContent(httpStatus); sendErr != nil {
			slog.Error("failed to send error response", "trace_id", traceID, "error", sendErr.Error())
		}
		return
	}
	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed,
		http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
