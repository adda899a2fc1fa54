package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type FinanceHandlerTestSuite struct {
	suite.Suite
	echo              *echo.Echo
	ctrl              *gomock.Controller
	categoryService   *service_mocks.MockCategoryServiceInterface
	ledgerService     *service_mocks.MockLedgerServiceInterface
	debtService       *service_mocks.MockDebtServiceInterface
	investmentService *service_mocks.MockInvestmentServiceInterface
	dashboardService  *service_mocks.MockDashboardServiceInterface
}

func TestFinanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}

func (s *FinanceHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.ledgerService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.debtService = service_mocks.NewMockDebtServiceInterface(s.ctrl)
	s.investmentService = service_mocks.NewMockInvestmentServiceInterface(s.ctrl)
	s.dashboardService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	handler := NewFinanceHandler(s.categoryService, s.ledgerService, s.debtService, s.investmentService, s.dashboardService)
	RegisterRoutes(s.echo, handler, NewHealthCheckHandler(healthyDB{}), nil)
}

func (s *FinanceHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FinanceHandlerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *FinanceHandlerTestSuite) decodeResult(rec *httptest.ResponseRecorder) dto.OperationResult {
	var result dto.OperationResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func (s *FinanceHandlerTestSuite) TestGetDashboard_Success() {
	s.dashboardService.EXPECT().ComputeSummary(gomock.Any()).Return(&dto.DashboardSummary{
		Month:   "2024-05",
		Balance: "R$ 600,00",
		ExpenseByCategory: dto.ChartSeries{
			Labels: []string{"Food"},
			Values: []float64{400},
		},
	}, nil)

	rec := s.do(http.MethodGet, "/api/dashboard", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"balance":"R$ 600,00"`)
	s.Contains(rec.Body.String(), `"labels":["Food"]`)
}

func (s *FinanceHandlerTestSuite) TestGetDashboard_StorageErrorHidesCause() {
	s.dashboardService.EXPECT().ComputeSummary(gomock.Any()).
		Return(nil, errors.NewStorageError(stderrors.New("no such table: debts")))

	rec := s.do(http.MethodGet, "/api/dashboard", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_002")
	s.NotContains(rec.Body.String(), "no such table")
}

func (s *FinanceHandlerTestSuite) TestListCategories() {
	s.categoryService.EXPECT().ListByKind(gomock.Any(), "Expense").
		Return([]dto.CategoryItem{{ID: 4, Name: "Housing"}}, nil)

	rec := s.do(http.MethodGet, "/api/categories?kind=Expense", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"id":4,"name":"Housing"}]`, rec.Body.String())
}

func (s *FinanceHandlerTestSuite) TestListCategories_InvalidKind() {
	s.categoryService.EXPECT().ListByKind(gomock.Any(), "Loan").
		Return(nil, errors.NewValidationError(errors.ValidationInvalidKind, "invalid kind 'Loan': must be Income or Expense"))

	rec := s.do(http.MethodGet, "/api/categories?kind=Loan", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
	s.Contains(rec.Body.String(), "invalid kind 'Loan'")
}

func (s *FinanceHandlerTestSuite) TestCreateTransaction_NumbersAndStringsAccepted() {
	s.ledgerService.EXPECT().
		Insert(gomock.Any(), dto.CreateTransactionRequest{
			Kind:        "Expense",
			Description: "Lunch",
			Amount:      "23.5",
			CategoryID:  "6",
		}).
		Return(dto.Succeeded("Transaction saved successfully"))

	rec := s.do(http.MethodPost, "/api/transactions",
		`{"kind":"Expense","description":"Lunch","amount":23.5,"category_id":"6"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(dto.Succeeded("Transaction saved successfully"), s.decodeResult(rec))
}

func (s *FinanceHandlerTestSuite) TestCreateTransaction_MissingFields() {
	rec := s.do(http.MethodPost, "/api/transactions", `{"kind":"Loan","description":"Bank"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	result := s.decodeResult(rec)
	s.False(result.Success)
	s.Equal(errors.ValidationGeneral, result.Code)
	s.Contains(result.Message, "kind: must be Income or Expense")
	s.Contains(result.Message, "amount: is required")
}

func (s *FinanceHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	rec := s.do(http.MethodPost, "/api/transactions", `{"kind":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(errors.ValidationInvalidFormat, s.decodeResult(rec).Code)
}

func (s *FinanceHandlerTestSuite) TestCreateTransaction_StorageFailureIs400() {
	s.ledgerService.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(dto.Failed(errors.SystemDatabaseError, "failed to create transaction: database is locked"))

	rec := s.do(http.MethodPost, "/api/transactions", `{"kind":"Income","description":"Pay","amount":"10"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("failed to create transaction: database is locked", s.decodeResult(rec).Message)
}

func (s *FinanceHandlerTestSuite) TestListTransactions_PassesFilterThrough() {
	name := "Food"
	s.ledgerService.EXPECT().List(gomock.Any(), "whatever").Return([]dto.TransactionItem{
		{ID: 1, Date: "2024-05-20", Description: "Lunch", Amount: 23.5, Kind: "Expense", CategoryName: &name},
	}, nil)

	rec := s.do(http.MethodGet, "/api/transactions?kind=whatever", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"id":1,"date":"2024-05-20","description":"Lunch","amount":23.5,"kind":"Expense","category_name":"Food"}]`, rec.Body.String())
}

func (s *FinanceHandlerTestSuite) TestDebtRoutes() {
	s.debtService.EXPECT().List(gomock.Any()).Return([]dto.DebtItem{}, nil)
	s.debtService.EXPECT().Insert(gomock.Any(), dto.CreateDebtRequest{Description: "Car", TotalAmount: "1.500,00"}).
		Return(dto.Succeeded("Debt added"))
	s.debtService.EXPECT().Remove(gomock.Any(), "77").Return(dto.Succeeded("Debt removed"))

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/debts", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/debts", `{"description":"Car","total_amount":"1.500,00"}`).Code)
	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/debts/77", "").Code)
}

func (s *FinanceHandlerTestSuite) TestDeleteDebt_InvalidID() {
	rec := s.do(http.MethodDelete, "/api/debts/abc", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeResult(rec).Message, "id: must be a positive integer")
}

func (s *FinanceHandlerTestSuite) TestInvestmentRoutes() {
	s.investmentService.EXPECT().List(gomock.Any()).
		Return(nil, errors.NewStorageError(stderrors.New("disk I/O error")))
	s.investmentService.EXPECT().Insert(gomock.Any(), dto.CreateInvestmentRequest{AssetName: "CDB", CurrentValue: "1000"}).
		Return(dto.Succeeded("Investment added"))
	s.investmentService.EXPECT().Remove(gomock.Any(), "3").Return(dto.Succeeded("Investment removed"))

	s.Equal(http.StatusInternalServerError, s.do(http.MethodGet, "/api/investments", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/investments", `{"asset_name":"CDB","current_value":1000}`).Code)
	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/investments/3", "").Code)
}

func (s *FinanceHandlerTestSuite) TestCreateInvestment_NegativeValue() {
	rec := s.do(http.MethodPost, "/api/investments", `{"asset_name":"CDB","current_value":-1}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeResult(rec).Message, "current_value")
}
