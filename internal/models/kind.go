package models

import (
	"errors"
	"fmt"
)

// Kind discriminates income from expense for categories and transactions.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

var ErrInvalidKind = errors.New("kind must be Income or Expense")

// AllKinds returns every valid kind
func AllKinds() []Kind {
	return []Kind{KindIncome, KindExpense}
}

func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind matches the stored spelling exactly; "income" is not a kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidKind, s)
	}
	return kind, nil
}
