package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes database transaction control for repositories
// that compose multi-row atomic units.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	AuditRepo     AuditLogRepository
	BudgetRepo    BudgetRepository
	CategoryRepo  CategoryRepository
	MinistryRepo  MinistryRepository
	CurrencyRepo  CurrencyRepository
	ReportingRepo ReportingRepository
}
