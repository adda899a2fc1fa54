package dto

type CreateInvestmentRequest struct {
	AssetName    string      `json:"asset_name" validate:"required"`
	CurrentValue LooseString `json:"current_value" validate:"required,money_amount"`
}

type InvestmentItem struct {
	ID           uint    `json:"id"`
	AssetName    string  `json:"asset_name"`
	CurrentValue float64 `json:"current_value"`
	LastUpdated  string  `json:"last_updated"`
}
