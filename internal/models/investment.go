package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAssetName  = errors.New("asset name cannot be empty")
	ErrNegativeValue   = errors.New("current value cannot be negative")
	ErrMissingValueDay = errors.New("last updated date is required")
)

type Investment struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	AssetName    string          `gorm:"type:text;not null" json:"asset_name"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"current_value"`
	LastUpdated  Date            `gorm:"type:text;not null" json:"last_updated"`
}

func (i *Investment) Validate() error {
	if strings.TrimSpace(i.AssetName) == "" {
		return ErrEmptyAssetName
	}
	if i.CurrentValue.IsNegative() {
		return ErrNegativeValue
	}
	if i.LastUpdated.IsZero() {
		return ErrMissingValueDay
	}
	return nil
}
