package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) InvestmentRepositoryInterface {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) Create(ctx context.Context, investment *models.Investment) error {
	if investment == nil {
		return errors.New("investment cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(investment).Error; err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

// List returns every investment, most recently created first
func (r *investmentRepository) List(ctx context.Context) ([]models.Investment, error) {
	var investments []models.Investment
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

func (r *investmentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Investment{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete investment: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *investmentRepository) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := r.db.WithContext(ctx).Model(&models.Investment{}).
		Select("COALESCE(SUM(current_value), 0) AS total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total invested: %w", err)
	}

	return result.Total.Round(2), nil
}
