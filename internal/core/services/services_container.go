package services

import (
	"github.com/redis/go-redis/v9"

	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	portssvc "github.com/parishkeep/church_treasury_app/internal/core/ports/services"
	"github.com/parishkeep/church_treasury_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. cacheClient may be nil, which disables the
// report cache.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cacheClient *redis.Client) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Ministry = NewMinistryService(repos.MinistryRepo)

	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo)

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.AccountRepo,
		repos.AuditRepo,
		repos.CategoryRepo,
		repos.MinistryRepo,
		cfg.AllowHardDelete,
	)

	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, repos.MinistryRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, cacheClient, cfg.ReportCacheTTL)

	return container
}
