package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the error returned by service read operations. Code decides
// how the boundary reports it; Err keeps the underlying cause for logging.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a missing or out-of-domain input. An empty
// message falls back to the default for the code.
func NewValidationError(code ErrorCode, message string) *AppError {
	if message == "" {
		message = GetErrorMessage(code)
	}
	return &AppError{Code: code, Message: message}
}

// NewStorageError wraps a storage failure. The message carries the
// underlying error text so callers can surface it unchanged.
func NewStorageError(err error) *AppError {
	message := GetErrorMessage(SystemDatabaseError)
	if err != nil {
		message = err.Error()
	}
	return &AppError{Code: SystemDatabaseError, Message: message, Err: err}
}

// AsAppError unwraps err into an *AppError when it carries one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsValidation(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && IsValidationCode(appErr.Code)
}

func IsStorage(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == SystemDatabaseError
}

// CodeOf returns the code carried by err, or SystemInternalError for
// anything that is not an *AppError.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return SystemInternalError
}
