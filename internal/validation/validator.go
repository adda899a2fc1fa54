package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finance-tracker/internal/models"
	"finance-tracker/internal/money"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the finance rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("entry_kind", validateEntryKind)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("record_id", validateRecordID)

	// Report fields by their JSON (or path parameter) name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s against its validate tags.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateEntryKind accepts exactly "Income" or "Expense"
func validateEntryKind(fl validator.FieldLevel) bool {
	return models.Kind(fl.Field().String()).IsValid()
}

// validateMoneyAmount accepts a non-negative decimal in either "1234.50"
// or "1.234,50" notation. Whether zero is allowed is left to the store.
func validateMoneyAmount(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := money.ParseNonNegativeAmount(fl.Field().String())
	return err == nil
}

// validateRecordID accepts a positive integer identifier
func validateRecordID(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := money.ParseID(fl.Field().String())
	return err == nil
}

// FieldMessage converts a validator.FieldError to a human-readable message
func FieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "entry_kind":
		return "must be Income or Expense"
	case "money_amount":
		return "must be a valid amount (e.g. 1234.50 or 1.234,50)"
	case "record_id":
		return "must be a positive integer"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// Messages flattens a validation error into "field: message" lines.
// Errors that are not validator.ValidationErrors yield their text.
func Messages(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), FieldMessage(fe)))
	}
	return messages
}
