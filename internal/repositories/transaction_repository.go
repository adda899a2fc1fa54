package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create appends a transaction to the ledger
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListWithCategory retrieves transactions joined with their category name.
// Ties on date fall back to id so later inserts come first.
func (r *transactionRepository) ListWithCategory(ctx context.Context, kind *models.Kind) ([]models.TransactionWithCategory, error) {
	var rows []models.TransactionWithCategory

	query := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.id, t.date, t.description, t.amount, t.kind, c.name AS category_name").
		Joins("LEFT JOIN categories c ON c.id = t.category_id")

	if kind != nil {
		query = query.Where("t.kind = ?", *kind)
	}

	if err := query.Order("t.date DESC").Order("t.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return rows, nil
}

// SumByKind totals the amounts of one kind dated within [from, to)
func (r *transactionRepository) SumByKind(ctx context.Context, kind models.Kind, from, to models.Date) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("kind = ? AND date >= ? AND date < ?", kind, from, to).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions by kind: %w", err)
	}

	return result.Total.Round(2), nil
}

// TotalsByCategory groups amounts by category name. The inner join drops
// uncategorized rows and rows pointing at a missing category.
func (r *transactionRepository) TotalsByCategory(ctx context.Context, kind models.Kind, from, to models.Date) ([]models.CategoryTotal, error) {
	var totals []models.CategoryTotal

	query := `
		SELECT
			c.name AS name,
			SUM(t.amount) AS total
		FROM transactions t
		INNER JOIN categories c ON c.id = t.category_id
		WHERE t.kind = ?
			AND t.date >= ?
			AND t.date < ?
		GROUP BY c.name
		ORDER BY c.name
	`

	if err := r.db.WithContext(ctx).Raw(query, kind, from, to).Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get totals by category: %w", err)
	}

	// SQLite sums NUMERIC columns as floating point
	for i := range totals {
		totals[i].Total = totals[i].Total.Round(2)
	}

	return totals, nil
}
