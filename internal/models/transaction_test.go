package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				Kind:        KindExpense,
				Description: "Lunch",
				Amount:      decimal.RequireFromString("23.50"),
			},
		},
		{
			name: "invalid kind",
			transaction: Transaction{
				Kind:        "Loan",
				Description: "Car",
				Amount:      decimal.NewFromInt(10),
			},
			wantErr: ErrInvalidKind,
		},
		{
			name: "blank description",
			transaction: Transaction{
				Kind:        KindIncome,
				Description: "   ",
				Amount:      decimal.NewFromInt(10),
			},
			wantErr: ErrEmptyDescription,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				Kind:        KindIncome,
				Description: "Salary",
				Amount:      decimal.Zero,
			},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDebt_Outstanding(t *testing.T) {
	d := Debt{TotalAmount: decimal.NewFromInt(500), PaidAmount: decimal.NewFromInt(650)}

	assert.True(t, d.Outstanding().Equal(decimal.NewFromInt(-150)))
}

func TestDebt_Validate(t *testing.T) {
	assert.NoError(t, (&Debt{Description: "Car", TotalAmount: decimal.NewFromInt(1)}).Validate())
	assert.ErrorIs(t, (&Debt{Description: "", TotalAmount: decimal.NewFromInt(1)}).Validate(), ErrEmptyDescription)
	assert.ErrorIs(t, (&Debt{Description: "Car", TotalAmount: decimal.NewFromInt(-1)}).Validate(), ErrInvalidAmount)
}

func TestInvestment_Validate(t *testing.T) {
	day := NewDate(2024, 1, 1)

	assert.NoError(t, (&Investment{AssetName: "CDB", CurrentValue: decimal.Zero, LastUpdated: day}).Validate())
	assert.ErrorIs(t, (&Investment{AssetName: " ", LastUpdated: day}).Validate(), ErrEmptyAssetName)
	assert.ErrorIs(t, (&Investment{AssetName: "CDB", CurrentValue: decimal.NewFromInt(-1), LastUpdated: day}).Validate(), ErrNegativeValue)
	assert.ErrorIs(t, (&Investment{AssetName: "CDB"}).Validate(), ErrMissingValueDay)
}
