package repositories

import (
	"context"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// AuditLogRepository reads the append-only edit history. Entries are only
// ever written by the ledger repository inside an edit's atomic unit, so no
// writer port exists.
type AuditLogRepository interface {
	// FindEntriesByTransactionID retrieves all edit records for a
	// transaction, oldest first.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error)
}
