package models

// CategoryType classifies a category as INCOME or EXPENSE.
type CategoryType string

// Category is the database representation of a transaction category.
type Category struct {
	CategoryID   string       `db:"category_id"`
	Name         string       `db:"name"`
	CategoryType CategoryType `db:"category_type"`
	AuditFields
}

// Ministry is the database representation of a sub-organization.
type Ministry struct {
	MinistryID string `db:"ministry_id"`
	Name       string `db:"name"`
	AuditFields
}
