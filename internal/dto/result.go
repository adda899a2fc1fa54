package dto

import "finance-tracker/internal/errors"

// OperationResult is what every mutating operation returns instead of an
// error. Code is empty on success.
type OperationResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Code    errors.ErrorCode `json:"code,omitempty"`
}

func Succeeded(message string) OperationResult {
	return OperationResult{Success: true, Message: message}
}

func Failed(code errors.ErrorCode, message string) OperationResult {
	return OperationResult{Success: false, Message: message, Code: code}
}
