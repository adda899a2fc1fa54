package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(db *gorm.DB) DebtRepositoryInterface {
	return &debtRepository{db: db}
}

func (r *debtRepository) Create(ctx context.Context, debt *models.Debt) error {
	if debt == nil {
		return errors.New("debt cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(debt).Error; err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// List returns every debt, most recently created first
func (r *debtRepository) List(ctx context.Context) ([]models.Debt, error) {
	var debts []models.Debt
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&debts).Error; err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	return debts, nil
}

func (r *debtRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Debt{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete debt: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// OutstandingTotal sums total minus paid over all debts, without clamping
func (r *debtRepository) OutstandingTotal(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.WithContext(ctx).Model(&models.Debt{}).
		Select("COALESCE(SUM(total_amount - paid_amount), 0) AS total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate outstanding debt: %w", err)
	}

	return result.Total.Round(2), nil
}
