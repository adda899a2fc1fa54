package services

import (
	"context"
	"time"

	"finance-tracker/internal/dto"
)

// CategoryServiceInterface exposes the fixed category taxonomy
type CategoryServiceInterface interface {
	// ListByKind rejects anything other than Income or Expense
	ListByKind(ctx context.Context, kind string) ([]dto.CategoryItem, error)
}

// LedgerServiceInterface defines the append-only transaction ledger
type LedgerServiceInterface interface {
	Insert(ctx context.Context, req dto.CreateTransactionRequest) dto.OperationResult
	// List ignores a kindFilter that is not a valid kind and returns every transaction
	List(ctx context.Context, kindFilter string) ([]dto.TransactionItem, error)
}

// DebtServiceInterface defines debt store operations
type DebtServiceInterface interface {
	List(ctx context.Context) ([]dto.DebtItem, error)
	Insert(ctx context.Context, req dto.CreateDebtRequest) dto.OperationResult
	Remove(ctx context.Context, id string) dto.OperationResult
}

// InvestmentServiceInterface defines investment store operations
type InvestmentServiceInterface interface {
	List(ctx context.Context) ([]dto.InvestmentItem, error)
	Insert(ctx context.Context, req dto.CreateInvestmentRequest) dto.OperationResult
	Remove(ctx context.Context, id string) dto.OperationResult
}

// DashboardServiceInterface computes the read-only monthly summary
type DashboardServiceInterface interface {
	ComputeSummary(ctx context.Context) (*dto.DashboardSummary, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
