package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/money"
	"finance-tracker/internal/repositories"
)

const (
	msgInvestmentAdded   = "Investment added"
	msgInvestmentRemoved = "Investment removed"
)

// investmentService implements InvestmentServiceInterface
type investmentService struct {
	investmentRepo repositories.InvestmentRepositoryInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
	now            func() time.Time
}

func NewInvestmentService(
	investmentRepo repositories.InvestmentRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) InvestmentServiceInterface {
	return &investmentService{
		investmentRepo: investmentRepo,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *investmentService) List(ctx context.Context) ([]dto.InvestmentItem, error) {
	op := track(s.metrics, entityInvestment, "list")

	investments, err := s.investmentRepo.List(ctx)
	if err != nil {
		return nil, op.failed(s.logger, err)
	}

	items := make([]dto.InvestmentItem, 0, len(investments))
	for _, inv := range investments {
		items = append(items, dto.InvestmentItem{
			ID:           inv.ID,
			AssetName:    inv.AssetName,
			CurrentValue: inv.CurrentValue.InexactFloat64(),
			LastUpdated:  inv.LastUpdated.String(),
		})
	}

	op.success()
	return items, nil
}

// Insert records a position valued today.
func (s *investmentService) Insert(ctx context.Context, req dto.CreateInvestmentRequest) dto.OperationResult {
	op := track(s.metrics, entityInvestment, "insert")

	assetName := strings.TrimSpace(req.AssetName)
	if assetName == "" {
		return result(op.invalid(s.logger, errors.ValidationRequiredField, "asset_name is required"))
	}

	value, err := money.ParseNonNegativeAmount(req.CurrentValue.String())
	if err != nil {
		return result(op.invalid(s.logger, errors.ValidationInvalidAmount,
			fmt.Sprintf("invalid current_value '%s': must be a non-negative decimal", req.CurrentValue)))
	}

	investment := &models.Investment{
		AssetName:    assetName,
		CurrentValue: value,
		LastUpdated:  models.DateOf(s.now()),
	}
	if err := s.investmentRepo.Create(ctx, investment); err != nil {
		return result(op.failed(s.logger, err))
	}

	s.logger.Info("investment added", "investment_id", investment.ID)
	op.success()
	return dto.Succeeded(msgInvestmentAdded)
}

// Remove deletes an investment by id. An id that matches nothing still succeeds.
func (s *investmentService) Remove(ctx context.Context, id string) dto.OperationResult {
	op := track(s.metrics, entityInvestment, "remove")

	investmentID, err := money.ParseID(id)
	if err != nil {
		return result(op.invalid(s.logger, errors.ValidationInvalidFormat,
			fmt.Sprintf("invalid id '%s': must be a positive integer", id)))
	}

	removed, err := s.investmentRepo.Delete(ctx, investmentID)
	if err != nil {
		return result(op.failed(s.logger, err))
	}
	if removed == 0 {
		s.logger.Debug("investment not found, nothing removed", "investment_id", investmentID)
	}

	op.success()
	return dto.Succeeded(msgInvestmentRemoved)
}
