package services

import (
	"context"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/parishkeep/church_treasury_app/internal/dto"
)

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	// DefineBudget creates or replaces the budget for a
	// (category, ministry, year) tuple.
	DefineBudget(ctx context.Context, req dto.DefineBudgetRequest, userID string) (*domain.Budget, error)
}

// BudgetReaderSvc defines read and evaluation operations for budgets
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a budget definition.
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// GetBudgetExecution evaluates a budget against live ledger totals.
	GetBudgetExecution(ctx context.Context, budgetID string) (*domain.BudgetExecution, error)

	// ListBudgetExecutions evaluates every budget of a year.
	ListBudgetExecutions(ctx context.Context, year int) ([]domain.BudgetExecution, error)

	// GetBudgetCoherence compares a year's projected balance (income budgets
	// minus expense budgets) against the real executed balance.
	GetBudgetCoherence(ctx context.Context, year int) (*domain.BudgetCoherence, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetWriterSvc
	BudgetReaderSvc
}
