package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/parishkeep/church_treasury_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of active accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive without touching history.
	DeactivateAccount(ctx context.Context, accountID string, userID string) error

	// DeleteAccount removes an account that has no transactions. When the
	// account is referenced and fallbackToDeactivate is set, it deactivates
	// instead; otherwise it returns apperrors.ErrConflict.
	DeleteAccount(ctx context.Context, accountID string, userID string, fallbackToDeactivate bool) (deactivated bool, err error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// CalculateAccountBalance derives the account balance from live ledger
	// rows, optionally as of a cutoff date.
	CalculateAccountBalance(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
