package repositories

import (
	"context"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// ListByKind returns the categories of one kind in insertion order
func (r *categoryRepository) ListByKind(ctx context.Context, kind models.Kind) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("id").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories by kind: %w", err)
	}
	return categories, nil
}
