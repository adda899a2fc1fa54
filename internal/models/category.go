package models

// Category is one entry of the fixed taxonomy transactions attach to.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Kind Kind   `gorm:"type:text;not null" json:"kind"`
}

// DefaultCategories is the seed set written into an empty categories table.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salary", Kind: KindIncome},
		{Name: "Meal Voucher", Kind: KindIncome},
		{Name: "Freelance", Kind: KindIncome},
		{Name: "Housing", Kind: KindExpense},
		{Name: "Transport", Kind: KindExpense},
		{Name: "Food", Kind: KindExpense},
		{Name: "Leisure", Kind: KindExpense},
		{Name: "Health", Kind: KindExpense},
		{Name: "Education", Kind: KindExpense},
	}
}
