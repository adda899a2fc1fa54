package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// FinanceHandler is the thin HTTP layer over the stores and the dashboard.
// Every route makes exactly one service call.
type FinanceHandler struct {
	categoryService   services.CategoryServiceInterface
	ledgerService     services.LedgerServiceInterface
	debtService       services.DebtServiceInterface
	investmentService services.InvestmentServiceInterface
	dashboardService  services.DashboardServiceInterface
}

func NewFinanceHandler(
	categoryService services.CategoryServiceInterface,
	ledgerService services.LedgerServiceInterface,
	debtService services.DebtServiceInterface,
	investmentService services.InvestmentServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *FinanceHandler {
	return &FinanceHandler{
		categoryService:   categoryService,
		ledgerService:     ledgerService,
		debtService:       debtService,
		investmentService: investmentService,
		dashboardService:  dashboardService,
	}
}

// GetDashboard returns the summary of the current month
//
// Method: GET /api/dashboard
//
// Success Response: 200 OK
//   - month: "YYYY-MM"
//   - income_total, expense_total: decimal strings
//   - balance, total_invested, outstanding_debt: "R$ 1.234,50"
//   - expense_by_category: {labels: [...], values: [...]}
//
// Error Responses:
//   - 500: Database error
func (h *FinanceHandler) GetDashboard(c echo.Context) error {
	summary, err := h.dashboardService.ComputeSummary(c.Request().Context())
	if err != nil {
		return SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// ListCategories returns the categories of one kind
//
// Method: GET /api/categories?kind=Income|Expense
//
// Error Responses:
//   - 400: Missing or invalid kind
//   - 500: Database error
func (h *FinanceHandler) ListCategories(c echo.Context) error {
	items, err := h.categoryService.ListByKind(c.Request().Context(), c.QueryParam("kind"))
	if err != nil {
		return SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateTransaction records a ledger entry dated today
//
// Method: POST /api/transactions
//
// Request body:
//   - kind: "Income" or "Expense"
//   - description: non-empty text
//   - amount: number or string ("23.50", "1.234,50")
//   - category_id: number or string, optional
//   - due_date: "YYYY-MM-DD", optional
//
// Responses: 200 {success: true, message}, 400 {success: false, message, code}
func (h *FinanceHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return SendResult(c, h.ledgerService.Insert(c.Request().Context(), req))
}

// ListTransactions returns the ledger newest first
//
// Method: GET /api/transactions?kind=Income|Expense
//
// An unknown kind is ignored and the full ledger is returned.
func (h *FinanceHandler) ListTransactions(c echo.Context) error {
	items, err := h.ledgerService.List(c.Request().Context(), c.QueryParam("kind"))
	if err != nil {
		return SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// ListDebts handles GET /api/debts
func (h *FinanceHandler) ListDebts(c echo.Context) error {
	items, err := h.debtService.List(c.Request().Context())
	if err != nil {
		return SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateDebt handles POST /api/debts
func (h *FinanceHandler) CreateDebt(c echo.Context) error {
	var req dto.CreateDebtRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return SendResult(c, h.debtService.Insert(c.Request().Context(), req))
}

// DeleteDebt handles DELETE /api/debts/:id. Unknown ids succeed.
func (h *FinanceHandler) DeleteDebt(c echo.Context) error {
	var req removeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return SendResult(c, h.debtService.Remove(c.Request().Context(), req.ID))
}

// ListInvestments handles GET /api/investments
func (h *FinanceHandler) ListInvestments(c echo.Context) error {
	items, err := h.investmentService.List(c.Request().Context())
	if err != nil {
		return SendAppError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateInvestment handles POST /api/investments
func (h *FinanceHandler) CreateInvestment(c echo.Context) error {
	var req dto.CreateInvestmentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return SendResult(c, h.investmentService.Insert(c.Request().Context(), req))
}

// DeleteInvestment handles DELETE /api/investments/:id. Unknown ids succeed.
func (h *FinanceHandler) DeleteInvestment(c echo.Context) error {
	var req removeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return SendResult(c, h.investmentService.Remove(c.Request().Context(), req.ID))
}
