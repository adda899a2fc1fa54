// Package money coerces user-supplied amounts and identifiers and renders
// amounts in the Brazilian currency format.
package money

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const currencyPrefix = "R$ "

// brlFormat is go-humanize's pattern for "." thousands and "," decimals.
const brlFormat = "#.###,##"

// amountLimit is the first magnitude a NUMERIC(15,2) column cannot hold.
var amountLimit = decimal.New(1, 13)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidID     = errors.New("invalid identifier")
)

// ParseAmount reads a decimal amount rounded half-up to cents. Both "1234.5"
// and "1.234,50" are accepted; a comma is always taken as the decimal mark.
// Magnitudes of 1e13 and above are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParsePositiveAmount is ParseAmount restricted to values above zero.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseNonNegativeAmount is ParseAmount restricted to values of zero or more.
func ParseNonNegativeAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseID reads a positive integer identifier.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// ParseOptionalID is ParseID where blank input means no identifier.
func ParseOptionalID(s string) (*uint, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := ParseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// FormatBRL renders d as "R$ 1.234,50". Amounts are rounded to cents first.
func FormatBRL(d decimal.Decimal) string {
	rounded := d.Round(2)
	if rounded.IsZero() {
		return currencyPrefix + "0,00"
	}
	return currencyPrefix + humanize.FormatFloat(brlFormat, rounded.InexactFloat64())
}
