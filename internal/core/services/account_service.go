package services

import (
	"context"
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

// accountService provides account registry operations.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepository) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account after validating its type and currency.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, req.CurrencyCode)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         req.Name,
		AccountType:  req.AccountType,
		CurrencyCode: req.CurrencyCode,
		Description:  req.Description,
		IsActive:     true,
		Balance:      decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to create account", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccountByID retrieves an account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves a page of active accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// UpdateAccount applies the provided fields to an existing account.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeactivateAccount hides an account from listings without touching history.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	return s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now())
}

// DeleteAccount removes an account with no ledger history. When the account
// is referenced by transactions the hard delete is refused; callers that set
// fallbackToDeactivate get a deactivation instead, which is logged loudly so
// the softened outcome is visible.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string, userID string, fallbackToDeactivate bool) (bool, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return false, err
	}

	referenced, err := s.accountRepo.HasTransactions(ctx, accountID)
	if err != nil {
		return false, err
	}
	if referenced {
		if !fallbackToDeactivate {
			return false, fmt.Errorf("%w: account %s has transactions and cannot be deleted", apperrors.ErrConflict, accountID)
		}
		s.LogWarn(ctx, "account has transactions, deactivating instead of deleting",
			slog.String("account_id", accountID),
			slog.String("user_id", userID))
		if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return false, err
	}
	s.LogInfo(ctx, "account deleted", slog.String("account_id", accountID))
	return false, nil
}

// CalculateAccountBalance derives the balance from live ledger rows instead
// of trusting the materialized column.
func (s *accountService) CalculateAccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	return s.accountRepo.ComputeBalance(ctx, accountID, asOf)
}
