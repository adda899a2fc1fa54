package dto

// ChartSeries holds two parallel sequences: Values[i] belongs to Labels[i].
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// DashboardSummary is the aggregated view for the current month.
// Monetary fields are pre-formatted as "R$ 1.234,50".
type DashboardSummary struct {
	Month             string      `json:"month"`
	IncomeTotal       string      `json:"income_total"`
	ExpenseTotal      string      `json:"expense_total"`
	Balance           string      `json:"balance"`
	TotalInvested     string      `json:"total_invested"`
	OutstandingDebt   string      `json:"outstanding_debt"`
	ExpenseByCategory ChartSeries `json:"expense_by_category"`
}
