package services

import (
	"context"
	"fmt"
	"log/slog"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListByKind returns the {id, name} pairs of one kind in seed order.
func (s *categoryService) ListByKind(ctx context.Context, kind string) ([]dto.CategoryItem, error) {
	op := track(s.metrics, entityCategory, "list_by_kind")

	k, err := models.ParseKind(kind)
	if err != nil {
		return nil, op.invalid(s.logger, errors.ValidationInvalidKind,
			fmt.Sprintf("invalid kind '%s': must be Income or Expense", kind))
	}

	categories, err := s.categoryRepo.ListByKind(ctx, k)
	if err != nil {
		return nil, op.failed(s.logger, err)
	}

	items := make([]dto.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.CategoryItem{ID: c.ID, Name: c.Name})
	}

	op.success()
	return items, nil
}
