package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/money"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements DashboardServiceInterface. It only reads.
type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	investmentRepo  repositories.InvestmentRepositoryInterface
	debtRepo        repositories.DebtRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	investmentRepo repositories.InvestmentRepositoryInterface,
	debtRepo repositories.DebtRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		investmentRepo:  investmentRepo,
		debtRepo:        debtRepo,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// ComputeSummary aggregates the calendar month containing now. The reads
// are independent and run concurrently; the first failure cancels the rest.
func (s *dashboardService) ComputeSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	op := track(s.metrics, entityDashboard, "summary")

	today := models.DateOf(s.now())
	from, to := today.MonthStart(), today.NextMonthStart()

	var (
		income, expense, invested, outstanding decimal.Decimal
		byCategory                             []models.CategoryTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(recoverRead(func() (err error) {
		income, err = s.transactionRepo.SumByKind(gctx, models.KindIncome, from, to)
		return err
	}))
	g.Go(recoverRead(func() (err error) {
		expense, err = s.transactionRepo.SumByKind(gctx, models.KindExpense, from, to)
		return err
	}))
	g.Go(recoverRead(func() (err error) {
		invested, err = s.investmentRepo.TotalValue(gctx)
		return err
	}))
	g.Go(recoverRead(func() (err error) {
		outstanding, err = s.debtRepo.OutstandingTotal(gctx)
		return err
	}))
	g.Go(recoverRead(func() (err error) {
		byCategory, err = s.transactionRepo.TotalsByCategory(gctx, models.KindExpense, from, to)
		return err
	}))
	if err := g.Wait(); err != nil {
		return nil, op.failed(s.logger, err)
	}

	chart := dto.ChartSeries{
		Labels: make([]string, 0, len(byCategory)),
		Values: make([]float64, 0, len(byCategory)),
	}
	for _, total := range byCategory {
		chart.Labels = append(chart.Labels, total.Name)
		chart.Values = append(chart.Values, total.Total.InexactFloat64())
	}

	op.success()
	return &dto.DashboardSummary{
		Month:             today.MonthKey(),
		IncomeTotal:       income.StringFixed(2),
		ExpenseTotal:      expense.StringFixed(2),
		Balance:           money.FormatBRL(income.Sub(expense)),
		TotalInvested:     money.FormatBRL(invested),
		OutstandingDebt:   money.FormatBRL(outstanding),
		ExpenseByCategory: chart,
	}, nil
}

// recoverRead turns a panic inside read into an error, so a bad row fails
// the request instead of the goroutine and the process with it.
func recoverRead(read func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("dashboard read panicked: %v", r)
			}
		}()
		return read()
	}
}
