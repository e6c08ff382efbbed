package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// BudgetRepository persists budget definitions and computes executed totals.
type BudgetRepository interface {
	// UpsertBudget inserts or replaces the budget for its
	// (category, ministry, year) tuple and returns the stored row.
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)

	// FindBudgetByID retrieves a budget by its unique identifier.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgetsByYear retrieves all budgets defined for a year.
	ListBudgetsByYear(ctx context.Context, year int) ([]domain.Budget, error)

	// ComputeExecutedTotal sums non-deleted transaction amounts matching the
	// category, the ministry (nil = all ministries) and the year. Always a
	// live aggregate; never cached.
	ComputeExecutedTotal(ctx context.Context, categoryID string, ministryID *string, year int) (decimal.Decimal, error)
}
