package dto

// CreateTransactionRequest is the payload for recording a ledger entry.
// Amount and CategoryID are coerced by the ledger, not by the decoder.
type CreateTransactionRequest struct {
	Kind        string      `json:"kind" validate:"required,entry_kind"`
	Description string      `json:"description" validate:"required"`
	Amount      LooseString `json:"amount" validate:"required,money_amount"`
	CategoryID  LooseString `json:"category_id"`
	DueDate     string      `json:"due_date,omitempty"`
}

// TransactionItem is one row of the statement, newest first.
type TransactionItem struct {
	ID           uint    `json:"id"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Kind         string  `json:"kind"`
	CategoryName *string `json:"category_name"`
}
