package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidAmount    = errors.New("amount must be positive")
)

// Transaction is an entry in the append-only ledger. CategoryID is a weak
// reference: it may point at a category that does not exist.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        Date            `gorm:"type:text;not null;index" json:"date"`
	Kind        Kind            `gorm:"type:text;not null" json:"kind"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryID  *uint           `json:"category_id,omitempty"`
	DueDate     *Date           `gorm:"type:text" json:"due_date,omitempty"`
}

func (t *Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return ErrInvalidKind
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// TransactionWithCategory is a ledger row joined with its category name.
// CategoryName is nil when the category is unset or missing.
type TransactionWithCategory struct {
	ID           uint            `json:"id"`
	Date         Date            `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         Kind            `json:"kind"`
	CategoryName *string         `json:"category_name"`
}
