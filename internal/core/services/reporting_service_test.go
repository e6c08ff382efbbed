package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	portssvc "github.com/parishkeep/church_treasury_app/internal/core/ports/services"
	"github.com/parishkeep/church_treasury_app/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetMonthlyCashflow(ctx context.Context, year int) ([]domain.MonthlyCashflowRow, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyCashflowRow), args.Error(1)
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context, year int, categoryType domain.CategoryType) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, year, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

// --- Test Suite ---
// The redis client is nil throughout, which disables caching; every call must
// hit the repository and still succeed.
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	ctx               context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, nil, 5*time.Minute)
	suite.ctx = context.Background()
}

func (suite *ReportingServiceTestSuite) TestMonthlyTrend_ZeroFillsQuietMonths() {
	year := 2026
	suite.mockReportingRepo.On("GetMonthlyCashflow", suite.ctx, year).Return([]domain.MonthlyCashflowRow{
		{Month: 3, Income: decimal.NewFromInt(5000), Expense: decimal.NewFromInt(1200)},
		{Month: 11, Income: decimal.NewFromInt(800), Expense: decimal.Zero},
	}, nil)

	trend, err := suite.service.MonthlyTrend(suite.ctx, year)

	suite.Require().NoError(err)
	suite.Require().Len(trend, 12)
	for i, row := range trend {
		suite.Equal(i+1, row.Month)
	}
	suite.True(trend[2].Income.Equal(decimal.NewFromInt(5000)))
	suite.True(trend[2].Expense.Equal(decimal.NewFromInt(1200)))
	suite.True(trend[10].Income.Equal(decimal.NewFromInt(800)))
	// January had no activity and still shows up as zeros.
	suite.True(trend[0].Income.IsZero())
	suite.True(trend[0].Expense.IsZero())
}

func (suite *ReportingServiceTestSuite) TestMonthlyTrend_EmptyYear() {
	year := 2020
	suite.mockReportingRepo.On("GetMonthlyCashflow", suite.ctx, year).Return([]domain.MonthlyCashflowRow{}, nil)

	trend, err := suite.service.MonthlyTrend(suite.ctx, year)

	suite.Require().NoError(err)
	suite.Len(trend, 12)
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_SlicesToLimit() {
	year := 2026
	totals := make([]domain.CategoryTotal, 5)
	for i := range totals {
		totals[i] = domain.CategoryTotal{
			CategoryID: uuid.NewString(),
			Name:       "Category",
			Total:      decimal.NewFromInt(int64(500 - i*100)),
		}
	}
	suite.mockReportingRepo.On("GetCategoryTotals", suite.ctx, year, domain.CategoryExpense).Return(totals, nil)

	breakdown, err := suite.service.CategoryBreakdown(suite.ctx, year, domain.CategoryExpense, 3)

	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 3)
	suite.True(breakdown[0].Total.Equal(decimal.NewFromInt(500)))
	suite.True(breakdown[2].Total.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_DefaultLimit() {
	year := 2026
	suite.mockReportingRepo.On("GetCategoryTotals", suite.ctx, year, domain.CategoryIncome).
		Return([]domain.CategoryTotal{}, nil)

	breakdown, err := suite.service.CategoryBreakdown(suite.ctx, year, domain.CategoryIncome, 0)

	suite.Require().NoError(err)
	suite.Empty(breakdown)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
