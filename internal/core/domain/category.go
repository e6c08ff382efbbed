package domain

// CategoryType classifies a category as an inflow or outflow bucket.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// ValidCategoryType reports whether t is a known category type.
func ValidCategoryType(t CategoryType) bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category is a reference entity used to classify transactions and budgets.
type Category struct {
	CategoryID   string       `json:"categoryID"` // Primary Key (UUID)
	Name         string       `json:"name"`
	CategoryType CategoryType `json:"categoryType"`
	AuditFields
}

// Ministry is a sub-organization transactions and budgets may be attributed to.
type Ministry struct {
	MinistryID string `json:"ministryID"` // Primary Key (UUID)
	Name       string `json:"name"`
	AuditFields
}
