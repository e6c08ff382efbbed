package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishkeep/church_treasury_app/internal/apperrors"
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	portssvc "github.com/parishkeep/church_treasury_app/internal/core/ports/services"
	"github.com/parishkeep/church_treasury_app/internal/core/services"
	"github.com/parishkeep/church_treasury_app/internal/dto"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepository = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByYear(ctx context.Context, year int) ([]domain.Budget, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ComputeExecutedTotal(ctx context.Context, categoryID string, ministryID *string, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, categoryID, ministryID, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo   *MockBudgetRepository
	mockCategoryRepo *MockCategoryRepository
	mockMinistryRepo *MockMinistryRepository
	service          portssvc.BudgetSvcFacade

	ctx             context.Context
	userID          string
	donationsCat    domain.Category
	utilitiesCat    domain.Category
	youthMinistry   domain.Ministry
	donationsBudget domain.Budget
	utilitiesBudget domain.Budget
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockMinistryRepo = new(MockMinistryRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCategoryRepo, suite.mockMinistryRepo)

	suite.ctx = context.Background()
	suite.userID = uuid.NewString()

	suite.donationsCat = domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         "Donations",
		CategoryType: domain.CategoryIncome,
	}
	suite.utilitiesCat = domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         "Utilities",
		CategoryType: domain.CategoryExpense,
	}
	suite.youthMinistry = domain.Ministry{
		MinistryID: uuid.NewString(),
		Name:       "Youth Ministry",
	}

	now := time.Now()
	suite.donationsBudget = domain.Budget{
		BudgetID:    uuid.NewString(),
		CategoryID:  suite.donationsCat.CategoryID,
		Year:        2026,
		AmountLimit: decimal.NewFromInt(10000),
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: suite.userID, LastUpdatedAt: now, LastUpdatedBy: suite.userID},
	}
	suite.utilitiesBudget = domain.Budget{
		BudgetID:    uuid.NewString(),
		CategoryID:  suite.utilitiesCat.CategoryID,
		Year:        2026,
		AmountLimit: decimal.NewFromInt(4000),
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: suite.userID, LastUpdatedAt: now, LastUpdatedBy: suite.userID},
	}
}

func (suite *BudgetServiceTestSuite) TestDefineBudget_Success() {
	req := dto.DefineBudgetRequest{
		CategoryID:  suite.utilitiesCat.CategoryID,
		Year:        2026,
		AmountLimit: decimal.NewFromInt(4000),
	}
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, req.CategoryID).Return(&suite.utilitiesCat, nil)
	suite.mockBudgetRepo.On("UpsertBudget", suite.ctx, mock.AnythingOfType("domain.Budget")).
		Return(&suite.utilitiesBudget, nil)

	budget, err := suite.service.DefineBudget(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.utilitiesBudget.BudgetID, budget.BudgetID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestDefineBudget_NonPositiveLimit() {
	req := dto.DefineBudgetRequest{
		CategoryID:  suite.utilitiesCat.CategoryID,
		Year:        2026,
		AmountLimit: decimal.Zero,
	}

	_, err := suite.service.DefineBudget(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, services.ErrBudgetLimitNotPositive)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpsertBudget")
}

func (suite *BudgetServiceTestSuite) TestDefineBudget_UnknownCategory() {
	req := dto.DefineBudgetRequest{
		CategoryID:  uuid.NewString(),
		Year:        2026,
		AmountLimit: decimal.NewFromInt(100),
	}
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, req.CategoryID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.DefineBudget(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestDefineBudget_UnknownMinistry() {
	ministryID := uuid.NewString()
	req := dto.DefineBudgetRequest{
		CategoryID:  suite.utilitiesCat.CategoryID,
		MinistryID:  &ministryID,
		Year:        2026,
		AmountLimit: decimal.NewFromInt(100),
	}
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, req.CategoryID).Return(&suite.utilitiesCat, nil)
	suite.mockMinistryRepo.On("FindMinistryByID", suite.ctx, ministryID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.DefineBudget(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestExecution_IncomeGoalMetAtBoundary() {
	budget := suite.donationsBudget
	suite.mockBudgetRepo.On("FindBudgetByID", suite.ctx, budget.BudgetID).Return(&budget, nil)
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, budget.CategoryID).Return(&suite.donationsCat, nil)
	// Collecting exactly the estimate meets the goal.
	suite.mockBudgetRepo.On("ComputeExecutedTotal", suite.ctx, budget.CategoryID, budget.MinistryID, budget.Year).
		Return(decimal.NewFromInt(10000), nil)

	exec, err := suite.service.GetBudgetExecution(suite.ctx, budget.BudgetID)

	suite.Require().NoError(err)
	suite.True(exec.IsGoalMet)
	suite.False(exec.IsOver)
	suite.True(exec.ConsumedPercent.Equal(decimal.NewFromInt(100)))
}

func (suite *BudgetServiceTestSuite) TestExecution_ExpenseNotOverAtBoundary() {
	budget := suite.utilitiesBudget
	suite.mockBudgetRepo.On("FindBudgetByID", suite.ctx, budget.BudgetID).Return(&budget, nil)
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, budget.CategoryID).Return(&suite.utilitiesCat, nil)
	// Spending exactly the limit is not an overspend.
	suite.mockBudgetRepo.On("ComputeExecutedTotal", suite.ctx, budget.CategoryID, budget.MinistryID, budget.Year).
		Return(decimal.NewFromInt(4000), nil)

	exec, err := suite.service.GetBudgetExecution(suite.ctx, budget.BudgetID)

	suite.Require().NoError(err)
	suite.False(exec.IsOver)
	suite.False(exec.IsGoalMet)
}

func (suite *BudgetServiceTestSuite) TestExecution_ExpenseOverAboveLimit() {
	budget := suite.utilitiesBudget
	suite.mockBudgetRepo.On("FindBudgetByID", suite.ctx, budget.BudgetID).Return(&budget, nil)
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, budget.CategoryID).Return(&suite.utilitiesCat, nil)
	suite.mockBudgetRepo.On("ComputeExecutedTotal", suite.ctx, budget.CategoryID, budget.MinistryID, budget.Year).
		Return(decimal.NewFromFloat(4000.01), nil)

	exec, err := suite.service.GetBudgetExecution(suite.ctx, budget.BudgetID)

	suite.Require().NoError(err)
	suite.True(exec.IsOver)
}

func (suite *BudgetServiceTestSuite) TestCoherence() {
	year := 2026
	suite.mockBudgetRepo.On("ListBudgetsByYear", suite.ctx, year).
		Return([]domain.Budget{suite.donationsBudget, suite.utilitiesBudget}, nil)
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.donationsCat.CategoryID).Return(&suite.donationsCat, nil)
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.utilitiesCat.CategoryID).Return(&suite.utilitiesCat, nil)
	suite.mockBudgetRepo.On("ComputeExecutedTotal", suite.ctx, suite.donationsCat.CategoryID, mock.Anything, year).
		Return(decimal.NewFromInt(3000), nil)
	suite.mockBudgetRepo.On("ComputeExecutedTotal", suite.ctx, suite.utilitiesCat.CategoryID, mock.Anything, year).
		Return(decimal.NewFromInt(4500), nil)

	coherence, err := suite.service.GetBudgetCoherence(suite.ctx, year)

	suite.Require().NoError(err)
	// Projected: 10000 income limit - 4000 expense limit = 6000.
	suite.True(coherence.ProjectedBalance.Equal(decimal.NewFromInt(6000)))
	suite.False(coherence.IsProjectedDeficit)
	// Real: 3000 collected - 4500 spent = -1500.
	suite.True(coherence.RealBalance.Equal(decimal.NewFromInt(-1500)))
	suite.True(coherence.IsRealDeficit)
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
