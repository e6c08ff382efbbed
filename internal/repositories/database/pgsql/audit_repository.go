package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	"github.com/parishkeep/church_treasury_app/internal/models"
	"github.com/parishkeep/church_treasury_app/internal/utils/mapping"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditRepository creates a read-only repository for the audit log.
// Audit rows are written by the ledger repository inside edit transactions.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditRepository{pool: pool}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditRepository)(nil)

// FindEntriesByTransactionID retrieves all edit records for a transaction,
// oldest first.
func (r *PgxAuditRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error) {
	query := `
		SELECT audit_id, transaction_id, changed_by, change_reason,
		       old_amount, new_amount,
		       old_source_account_id, new_source_account_id,
		       old_destination_account_id, new_destination_account_id,
		       created_at
		FROM audit_log
		WHERE transaction_id = $1
		ORDER BY created_at ASC, audit_id ASC;
	`

	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		var m models.AuditLogEntry
		err := rows.Scan(
			&m.AuditID,
			&m.TransactionID,
			&m.ChangedBy,
			&m.ChangeReason,
			&m.OldAmount,
			&m.NewAmount,
			&m.OldSourceAccountID,
			&m.NewSourceAccountID,
			&m.OldDestinationAccountID,
			&m.NewDestinationAccountID,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entry rows: %w", err)
	}

	return mapping.ToDomainAuditLogEntrySlice(entries), nil
}
