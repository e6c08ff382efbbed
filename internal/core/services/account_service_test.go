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

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepository = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.AccountSvcFacade

	ctx    context.Context
	userID string
	usd    domain.Currency
	acct   domain.Account
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCurrencyRepo)

	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
	suite.usd = domain.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2}
	suite.acct = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Checking",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
		IsActive:     true,
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Name:         "Building Fund",
		AccountType:  domain.Asset,
		CurrencyCode: "USD",
	}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").Return(&suite.usd, nil)

	var saved domain.Account
	suite.mockAccountRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).
		Return(nil)

	account, err := suite.service.CreateAccount(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.True(account.IsActive)
	suite.True(saved.Balance.Equal(decimal.Zero))
	suite.Equal(suite.userID, saved.CreatedBy)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	req := dto.CreateAccountRequest{
		Name:         "Bad",
		AccountType:  domain.AccountType("SAVINGS"),
		CurrencyCode: "USD",
	}

	_, err := suite.service.CreateAccount(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCurrency() {
	req := dto.CreateAccountRequest{
		Name:         "Euro Fund",
		AccountType:  domain.Asset,
		CurrencyCode: "XXX",
	}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", suite.ctx, "XXX").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateAccount(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NoHistory() {
	acct := suite.acct
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, acct.AccountID).Return(&acct, nil)
	suite.mockAccountRepo.On("HasTransactions", suite.ctx, acct.AccountID).Return(false, nil)
	suite.mockAccountRepo.On("DeleteAccount", suite.ctx, acct.AccountID).Return(nil)

	deactivated, err := suite.service.DeleteAccount(suite.ctx, acct.AccountID, suite.userID, false)

	suite.Require().NoError(err)
	suite.False(deactivated)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ReferencedRefused() {
	acct := suite.acct
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, acct.AccountID).Return(&acct, nil)
	suite.mockAccountRepo.On("HasTransactions", suite.ctx, acct.AccountID).Return(true, nil)

	_, err := suite.service.DeleteAccount(suite.ctx, acct.AccountID, suite.userID, false)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount")
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ReferencedFallsBackToDeactivate() {
	acct := suite.acct
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, acct.AccountID).Return(&acct, nil)
	suite.mockAccountRepo.On("HasTransactions", suite.ctx, acct.AccountID).Return(true, nil)
	suite.mockAccountRepo.On("DeactivateAccount", suite.ctx, acct.AccountID, suite.userID, mock.Anything).Return(nil)

	deactivated, err := suite.service.DeleteAccount(suite.ctx, acct.AccountID, suite.userID, true)

	suite.Require().NoError(err)
	suite.True(deactivated)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount")
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance() {
	acct := suite.acct
	asOf := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, acct.AccountID).Return(&acct, nil)
	suite.mockAccountRepo.On("ComputeBalance", suite.ctx, acct.AccountID, &asOf).
		Return(decimal.NewFromInt(1234), nil)

	balance, err := suite.service.CalculateAccountBalance(suite.ctx, acct.AccountID, &asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(1234)))
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance_NotFound() {
	id := uuid.NewString()
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, id).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CalculateAccountBalance(suite.ctx, id, nil)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ComputeBalance")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	acct := suite.acct
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, acct.AccountID).Return(&acct, nil)

	var updated domain.Account
	suite.mockAccountRepo.On("UpdateAccount", suite.ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Account)
		}).
		Return(nil)

	newName := "Main Checking"
	result, err := suite.service.UpdateAccount(suite.ctx, acct.AccountID, dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Main Checking", result.Name)
	suite.Equal(acct.AccountType, updated.AccountType)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
