package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo)
	auditRepo := newPgxAuditRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	ministryRepo := newPgxMinistryRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		LedgerRepo:    ledgerRepo,
		AuditRepo:     auditRepo,
		BudgetRepo:    budgetRepo,
		CategoryRepo:  categoryRepo,
		MinistryRepo:  ministryRepo,
		CurrencyRepo:  currencyRepo,
		ReportingRepo: reportingRepo,
	}
}
