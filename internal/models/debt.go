package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Debt is money owed. PaidAmount is only ever read; nothing writes it after creation.
type Debt struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"paid_amount"`
}

// Outstanding is total minus paid. It is negative when overpaid.
func (d *Debt) Outstanding() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

func (d *Debt) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	if !d.TotalAmount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
