package main

import (
	"log/slog"

	"finance-tracker/internal/database"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"
)

// application holds the services built over one database handle.
type application struct {
	categories  services.CategoryServiceInterface
	ledger      services.LedgerServiceInterface
	debts       services.DebtServiceInterface
	investments services.InvestmentServiceInterface
	dashboard   services.DashboardServiceInterface
}

// newApplication wires repositories into services. A nil metrics recorder
// disables metrics.
func newApplication(db *database.DB, metrics services.MetricsRecorderInterface, logger *slog.Logger) *application {
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	debtRepo := repositories.NewDebtRepository(db.DB)
	investmentRepo := repositories.NewInvestmentRepository(db.DB)

	return &application{
		categories:  services.NewCategoryService(categoryRepo, metrics, logger),
		ledger:      services.NewLedgerService(transactionRepo, metrics, logger),
		debts:       services.NewDebtService(debtRepo, metrics, logger),
		investments: services.NewInvestmentService(investmentRepo, metrics, logger),
		dashboard:   services.NewDashboardService(transactionRepo, investmentRepo, debtRepo, metrics, logger),
	}
}
