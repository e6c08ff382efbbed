package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parishkeep/church_treasury_app/internal/apperrors"
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	portssvc "github.com/parishkeep/church_treasury_app/internal/core/ports/services"
	"github.com/parishkeep/church_treasury_app/internal/dto"
)

var ErrBudgetLimitNotPositive = errors.New("budget amount limit must be positive")

// budgetService provides budget definition and live execution evaluation.
// Executed totals are always computed from the ledger, never cached.
type budgetService struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepository
	categoryRepo portsrepo.CategoryRepository
	ministryRepo portsrepo.MinistryRepository
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, categoryRepo portsrepo.CategoryRepository, ministryRepo portsrepo.MinistryRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		ministryRepo: ministryRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// DefineBudget creates or replaces the budget for a (category, ministry,
// year) tuple.
func (s *budgetService) DefineBudget(ctx context.Context, req dto.DefineBudgetRequest, userID string) (*domain.Budget, error) {
	if req.AmountLimit.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrBudgetLimitNotPositive, req.AmountLimit.String())
	}

	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, err
	}
	if req.MinistryID != nil {
		if _, err := s.ministryRepo.FindMinistryByID(ctx, *req.MinistryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown ministry %s", apperrors.ErrValidation, *req.MinistryID)
			}
			return nil, err
		}
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		CategoryID:  req.CategoryID,
		MinistryID:  req.MinistryID,
		Year:        req.Year,
		AmountLimit: req.AmountLimit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	stored, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "failed to define budget",
			slog.String("category_id", req.CategoryID),
			slog.Int("year", req.Year))
		return nil, err
	}

	s.LogInfo(ctx, "budget defined",
		slog.String("budget_id", stored.BudgetID),
		slog.Int("year", stored.Year))
	return stored, nil
}

// GetBudgetByID retrieves a budget definition.
func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, budgetID)
}

// evaluate pairs a budget with its live executed total and status flags.
func (s *budgetService) evaluate(ctx context.Context, budget domain.Budget) (*domain.BudgetExecution, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, budget.CategoryID)
	if err != nil {
		return nil, err
	}

	executed, err := s.budgetRepo.ComputeExecutedTotal(ctx, budget.CategoryID, budget.MinistryID, budget.Year)
	if err != nil {
		return nil, err
	}

	exec := domain.BudgetExecution{
		Budget:          budget,
		CategoryType:    category.CategoryType,
		Executed:        executed,
		ConsumedPercent: budget.ConsumedPercent(executed),
	}
	// The status flags are type-specific: a collection goal is met at the
	// estimate, a spending limit is only breached above it.
	switch category.CategoryType {
	case domain.CategoryIncome:
		exec.IsGoalMet = budget.IsGoalMet(executed)
	case domain.CategoryExpense:
		exec.IsOver = budget.IsOver(executed)
	}
	return &exec, nil
}

// GetBudgetExecution evaluates one budget against the live ledger.
func (s *budgetService) GetBudgetExecution(ctx context.Context, budgetID string) (*domain.BudgetExecution, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, *budget)
}

// ListBudgetExecutions evaluates every budget of a year.
func (s *budgetService) ListBudgetExecutions(ctx context.Context, year int) ([]domain.BudgetExecution, error) {
	budgets, err := s.budgetRepo.ListBudgetsByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	executions := make([]domain.BudgetExecution, 0, len(budgets))
	for _, budget := range budgets {
		exec, err := s.evaluate(ctx, budget)
		if err != nil {
			return nil, err
		}
		executions = append(executions, *exec)
	}
	return executions, nil
}

// GetBudgetCoherence compares the planned yearly balance against the real
// one. Projected is income limits minus expense limits; real is income
// executed minus expense executed over the same budget tuples.
func (s *budgetService) GetBudgetCoherence(ctx context.Context, year int) (*domain.BudgetCoherence, error) {
	executions, err := s.ListBudgetExecutions(ctx, year)
	if err != nil {
		return nil, err
	}

	projected := decimal.Zero
	real := decimal.Zero
	for _, exec := range executions {
		switch exec.CategoryType {
		case domain.CategoryIncome:
			projected = projected.Add(exec.Budget.AmountLimit)
			real = real.Add(exec.Executed)
		case domain.CategoryExpense:
			projected = projected.Sub(exec.Budget.AmountLimit)
			real = real.Sub(exec.Executed)
		}
	}

	return &domain.BudgetCoherence{
		Year:               year,
		ProjectedBalance:   projected,
		RealBalance:        real,
		IsProjectedDeficit: projected.IsNegative(),
		IsRealDeficit:      real.IsNegative(),
	}, nil
}
