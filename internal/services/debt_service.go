package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/money"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	msgDebtAdded   = "Debt added"
	msgDebtRemoved = "Debt removed"
)

// debtService implements DebtServiceInterface
type debtService struct {
	debtRepo repositories.DebtRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

func NewDebtService(
	debtRepo repositories.DebtRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DebtServiceInterface {
	return &debtService{
		debtRepo: debtRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// List returns every debt, most recently created first.
func (s *debtService) List(ctx context.Context) ([]dto.DebtItem, error) {
	op := track(s.metrics, entityDebt, "list")

	debts, err := s.debtRepo.List(ctx)
	if err != nil {
		return nil, op.failed(s.logger, err)
	}

	items := make([]dto.DebtItem, 0, len(debts))
	for _, d := range debts {
		items = append(items, dto.DebtItem{
			ID:          d.ID,
			Description: d.Description,
			TotalAmount: d.TotalAmount.InexactFloat64(),
			PaidAmount:  d.PaidAmount.InexactFloat64(),
		})
	}

	op.success()
	return items, nil
}

// Insert records a new debt with nothing paid yet.
func (s *debtService) Insert(ctx context.Context, req dto.CreateDebtRequest) dto.OperationResult {
	op := track(s.metrics, entityDebt, "insert")

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return result(op.invalid(s.logger, errors.ValidationRequiredField, "description is required"))
	}

	total, err := money.ParsePositiveAmount(req.TotalAmount.String())
	if err != nil {
		return result(op.invalid(s.logger, errors.ValidationInvalidAmount,
			fmt.Sprintf("invalid total_amount '%s': must be a positive decimal", req.TotalAmount)))
	}

	debt := &models.Debt{
		Description: description,
		TotalAmount: total,
		PaidAmount:  decimal.Zero,
	}
	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return result(op.failed(s.logger, err))
	}

	s.logger.Info("debt added", "debt_id", debt.ID)
	op.success()
	return dto.Succeeded(msgDebtAdded)
}

// Remove deletes a debt by id. An id that matches nothing still succeeds.
func (s *debtService) Remove(ctx context.Context, id string) dto.OperationResult {
	op := track(s.metrics, entityDebt, "remove")

	debtID, err := money.ParseID(id)
	if err != nil {
		return result(op.invalid(s.logger, errors.ValidationInvalidFormat,
			fmt.Sprintf("invalid id '%s': must be a positive integer", id)))
	}

	removed, err := s.debtRepo.Delete(ctx, debtID)
	if err != nil {
		return result(op.failed(s.logger, err))
	}
	if removed == 0 {
		s.logger.Debug("debt not found, nothing removed", "debt_id", debtID)
	} else {
		s.logger.Info("debt removed", "debt_id", debtID)
	}

	op.success()
	return dto.Succeeded(msgDebtRemoved)
}
