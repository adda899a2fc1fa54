package services

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// LedgerServiceSuite defines the test suite for LedgerServiceInterface
type LedgerServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics         *PrometheusMetrics
	service         *ledgerService
	ctx             context.Context
	today           time.Time
}

func (s *LedgerServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry())
	s.service = NewLedgerService(s.transactionRepo, s.metrics, discardLogger()).(*ledgerService)
	s.today = time.Date(2024, time.March, 14, 21, 30, 0, 0, time.UTC)
	s.service.now = fixedClock(s.today)
	s.ctx = context.Background()
}

func (s *LedgerServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func (s *LedgerServiceSuite) operations(operation, status string) float64 {
	return testutil.ToFloat64(s.metrics.operationsTotal.WithLabelValues(entityTransaction, operation, status))
}

func (s *LedgerServiceSuite) TestInsert_Success() {
	req := dto.CreateTransactionRequest{
		Kind:        "Expense",
		Description: "  Lunch  ",
		Amount:      "23.50",
		CategoryID:  "6",
		DueDate:     "2024-04-10",
	}

	s.transactionRepo.EXPECT().
		Create(s.ctx, gomock.AssignableToTypeOf(&models.Transaction{})).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			s.Equal(models.NewDate(2024, time.March, 14), tx.Date)
			s.Equal(models.KindExpense, tx.Kind)
			s.Equal("Lunch", tx.Description)
			s.True(decimal.RequireFromString("23.50").Equal(tx.Amount))
			s.Require().NotNil(tx.CategoryID)
			s.Equal(uint(6), *tx.CategoryID)
			s.Require().NotNil(tx.DueDate)
			s.Equal("2024-04-10", tx.DueDate.String())
			tx.ID = 1
			return nil
		})

	result := s.service.Insert(s.ctx, req)

	s.True(result.Success)
	s.Equal("Transaction saved successfully", result.Message)
	s.Empty(result.Code)
	s.Equal(1.0, s.operations("insert", "success"))
}

func (s *LedgerServiceSuite) TestInsert_BlankCategoryStoresNull() {
	s.transactionRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			s.Nil(tx.CategoryID)
			s.Nil(tx.DueDate)
			return nil
		})

	result := s.service.Insert(s.ctx, dto.CreateTransactionRequest{
		Kind:        "Income",
		Description: "Salary",
		Amount:      "1.234,56",
	})

	s.True(result.Success)
}

func (s *LedgerServiceSuite) TestInsert_ValidationFailures() {
	valid := dto.CreateTransactionRequest{Kind: "Expense", Description: "Bus", Amount: "4.40", CategoryID: "5"}

	testCases := []struct {
		name   string
		mutate func(*dto.CreateTransactionRequest)
		code   errors.ErrorCode
	}{
		{"unknown kind", func(r *dto.CreateTransactionRequest) { r.Kind = "Loan" }, errors.ValidationInvalidKind},
		{"lower case kind", func(r *dto.CreateTransactionRequest) { r.Kind = "expense" }, errors.ValidationInvalidKind},
		{"blank description", func(r *dto.CreateTransactionRequest) { r.Description = "   " }, errors.ValidationRequiredField},
		{"text amount", func(r *dto.CreateTransactionRequest) { r.Amount = "lots" }, errors.ValidationInvalidAmount},
		{"zero amount", func(r *dto.CreateTransactionRequest) { r.Amount = "0" }, errors.ValidationInvalidAmount},
		{"negative amount", func(r *dto.CreateTransactionRequest) { r.Amount = "-3" }, errors.ValidationInvalidAmount},
		{"text category", func(r *dto.CreateTransactionRequest) { r.CategoryID = "food" }, errors.ValidationInvalidFormat},
		{"bad due date", func(r *dto.CreateTransactionRequest) { r.DueDate = "10/04/2024" }, errors.ValidationInvalidDate},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := valid
			tc.mutate(&req)

			// No Create expectation: the repository must not be reached.
			result := s.service.Insert(s.ctx, req)

			s.False(result.Success)
			s.Equal(tc.code, result.Code)
			s.NotEmpty(result.Message)
		})
	}
	s.Equal(float64(len(testCases)), s.operations("insert", "invalid"))
}

func (s *LedgerServiceSuite) TestInsert_StorageFailureIsReportedNotReturned() {
	s.transactionRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(stderrors.New("failed to create transaction: database is locked"))

	result := s.service.Insert(s.ctx, dto.CreateTransactionRequest{Kind: "Income", Description: "Gift", Amount: "50"})

	s.False(result.Success)
	s.Equal(errors.SystemDatabaseError, result.Code)
	s.Equal("failed to create transaction: database is locked", result.Message)
	s.Equal(1.0, s.operations("insert", "failed"))
}

func (s *LedgerServiceSuite) TestList_ValidFilter() {
	food := "Food"
	kind := models.KindExpense
	s.transactionRepo.EXPECT().ListWithCategory(s.ctx, &kind).Return([]models.TransactionWithCategory{
		{
			ID:           7,
			Date:         models.NewDate(2024, time.March, 2),
			Description:  "Groceries",
			Amount:       decimal.RequireFromString("187.35"),
			Kind:         models.KindExpense,
			CategoryName: &food,
		},
	}, nil)

	items, err := s.service.List(s.ctx, "Expense")

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(dto.TransactionItem{
		ID:           7,
		Date:         "2024-03-02",
		Description:  "Groceries",
		Amount:       187.35,
		Kind:         "Expense",
		CategoryName: &food,
	}, items[0])
}

func (s *LedgerServiceSuite) TestList_UnknownFilterIsIgnored() {
	for _, filter := range []string{"", "Loan", "income"} {
		s.Run(filter, func() {
			s.transactionRepo.EXPECT().ListWithCategory(s.ctx, gomock.Nil()).Return(nil, nil)

			items, err := s.service.List(s.ctx, filter)

			s.Require().NoError(err)
			s.NotNil(items)
			s.Empty(items)
		})
	}
}

func (s *LedgerServiceSuite) TestList_StorageError() {
	s.transactionRepo.EXPECT().ListWithCategory(s.ctx, gomock.Nil()).
		Return(nil, stderrors.New("failed to list transactions: disk I/O error"))

	items, err := s.service.List(s.ctx, "")

	s.Nil(items)
	s.True(errors.IsStorage(err))
	s.Contains(err.Error(), "disk I/O error")
}
