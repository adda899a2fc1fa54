package models

import "github.com/shopspring/decimal"

// CategoryTotal is the summed amount of one category's transactions.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}
