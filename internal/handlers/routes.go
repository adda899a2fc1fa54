package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the API, health and metrics endpoints on e.
func RegisterRoutes(e *echo.Echo, finance *FinanceHandler, health *HealthCheckHandler, metrics http.Handler) {
	e.GET("/health", health.HealthCheck)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api")
	api.GET("/dashboard", finance.GetDashboard)
	api.GET("/categories", finance.ListCategories)

	api.GET("/transactions", finance.ListTransactions)
	api.POST("/transactions", finance.CreateTransaction)

	api.GET("/debts", finance.ListDebts)
	api.POST("/debts", finance.CreateDebt)
	api.DELETE("/debts/:id", finance.DeleteDebt)

	api.GET("/investments", finance.ListInvestments)
	api.POST("/investments", finance.CreateInvestment)
	api.DELETE("/investments/:id", finance.DeleteInvestment)
}
