package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "Income", want: KindIncome},
		{input: "Expense", want: KindExpense},
		{input: "Loan", wantErr: true},
		{input: "income", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidKind)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllKinds(t *testing.T) {
	for _, kind := range AllKinds() {
		assert.True(t, kind.IsValid())
	}
	assert.False(t, Kind("Transfer").IsValid())
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	require.Len(t, categories, 9)

	counts := map[Kind]int{}
	names := map[string]bool{}
	for _, c := range categories {
		counts[c.Kind]++
		assert.False(t, names[c.Name], "duplicate category %s", c.Name)
		names[c.Name] = true
	}
	assert.Equal(t, 3, counts[KindIncome])
	assert.Equal(t, 6, counts[KindExpense])
}
