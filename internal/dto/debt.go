package dto

type CreateDebtRequest struct {
	Description string      `json:"description" validate:"required"`
	TotalAmount LooseString `json:"total_amount" validate:"required,money_amount"`
}

type DebtItem struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
}
