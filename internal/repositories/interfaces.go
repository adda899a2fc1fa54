package repositories

import (
	"context"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	ListByKind(ctx context.Context, kind models.Kind) ([]models.Category, error)
}

// TransactionRepositoryInterface defines the contract for ledger repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	// ListWithCategory returns newest first; a nil kind lists every transaction.
	ListWithCategory(ctx context.Context, kind *models.Kind) ([]models.TransactionWithCategory, error)
	// SumByKind totals amounts dated in [from, to).
	SumByKind(ctx context.Context, kind models.Kind, from, to models.Date) (decimal.Decimal, error)
	// TotalsByCategory groups [from, to) amounts of one kind by category name,
	// skipping transactions whose category does not resolve.
	TotalsByCategory(ctx context.Context, kind models.Kind, from, to models.Date) ([]models.CategoryTotal, error)
}

// DebtRepositoryInterface defines the contract for debt repository operations
type DebtRepositoryInterface interface {
	Create(ctx context.Context, debt *models.Debt) error
	List(ctx context.Context) ([]models.Debt, error)
	// Delete reports how many rows were removed; zero is not an error.
	Delete(ctx context.Context, id uint) (int64, error)
	OutstandingTotal(ctx context.Context) (decimal.Decimal, error)
}

// InvestmentRepositoryInterface defines the contract for investment repository operations
type InvestmentRepositoryInterface interface {
	Create(ctx context.Context, investment *models.Investment) error
	List(ctx context.Context) ([]models.Investment, error)
	// Delete reports how many rows were removed; zero is not an error.
	Delete(ctx context.Context, id uint) (int64, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
}
