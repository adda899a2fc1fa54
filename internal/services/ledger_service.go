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

const msgTransactionSaved = "Transaction saved successfully"

// ledgerService implements LedgerServiceInterface. Transactions are only
// ever appended; nothing here updates or deletes them.
type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// Insert records a transaction dated today. Every failure, including a
// storage error, is reported in the result rather than returned.
func (s *ledgerService) Insert(ctx context.Context, req dto.CreateTransactionRequest) dto.OperationResult {
	op := track(s.metrics, entityTransaction, "insert")

	transaction, appErr := s.buildTransaction(op, req)
	if appErr != nil {
		return result(appErr)
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return result(op.failed(s.logger, err))
	}

	s.logger.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"kind", transaction.Kind,
		"date", transaction.Date.String(),
	)
	op.success()
	return dto.Succeeded(msgTransactionSaved)
}

func (s *ledgerService) buildTransaction(op *operationTracker, req dto.CreateTransactionRequest) (*models.Transaction, *errors.AppError) {
	kind, err := models.ParseKind(req.Kind)
	if err != nil {
		return nil, op.invalid(s.logger, errors.ValidationInvalidKind,
			fmt.Sprintf("invalid kind '%s': must be Income or Expense", req.Kind))
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, op.invalid(s.logger, errors.ValidationRequiredField, "description is required")
	}

	amount, err := money.ParsePositiveAmount(req.Amount.String())
	if err != nil {
		return nil, op.invalid(s.logger, errors.ValidationInvalidAmount,
			fmt.Sprintf("invalid amount '%s': must be a positive decimal", req.Amount))
	}

	categoryID, err := money.ParseOptionalID(req.CategoryID.String())
	if err != nil {
		return nil, op.invalid(s.logger, errors.ValidationInvalidFormat,
			fmt.Sprintf("invalid category_id '%s': must be a positive integer", req.CategoryID))
	}

	var dueDate *models.Date
	if due := strings.TrimSpace(req.DueDate); due != "" {
		d, err := models.ParseDate(due)
		if err != nil {
			return nil, op.invalid(s.logger, errors.ValidationInvalidDate, err.Error())
		}
		dueDate = &d
	}

	return &models.Transaction{
		Date:        models.DateOf(s.now()),
		Kind:        kind,
		Description: description,
		Amount:      amount,
		CategoryID:  categoryID,
		DueDate:     dueDate,
	}, nil
}

// List returns the statement newest first. A kindFilter that is not a
// valid kind is ignored and every transaction is returned.
func (s *ledgerService) List(ctx context.Context, kindFilter string) ([]dto.TransactionItem, error) {
	op := track(s.metrics, entityTransaction, "list")

	var filter *models.Kind
	if kind := models.Kind(kindFilter); kind.IsValid() {
		filter = &kind
	} else if kindFilter != "" {
		s.logger.Debug("ignoring unknown kind filter", "kind", kindFilter)
	}

	rows, err := s.transactionRepo.ListWithCategory(ctx, filter)
	if err != nil {
		return nil, op.failed(s.logger, err)
	}

	items := make([]dto.TransactionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.TransactionItem{
			ID:           row.ID,
			Date:         row.Date.String(),
			Description:  row.Description,
			Amount:       row.Amount.InexactFloat64(),
			Kind:         row.Kind.String(),
			CategoryName: row.CategoryName,
		})
	}

	op.success()
	return items, nil
}
