package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/parishkeep/church_treasury_app/internal/apperrors"
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	"github.com/parishkeep/church_treasury_app/internal/models"
	"github.com/parishkeep/church_treasury_app/internal/utils/mapping"
	"github.com/parishkeep/church_treasury_app/internal/utils/pagination"
)

const transactionColumns = `transaction_id, description, amount, currency_code, transaction_date, source_account_id, destination_account_id, category_id, ministry_id, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxLedgerRepository creates a new repository for transaction data.
// The account repository is injected for in-transaction balance updates.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.TransactionDate,
		&m.SourceAccountID,
		&m.DestinationAccountID,
		&m.CategoryID,
		&m.MinistryID,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// applyBalanceChanges locks the affected account rows and applies the deltas
// inside the caller's transaction.
func (r *PgxLedgerRepository) applyBalanceChanges(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}

	locked, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	for _, accID := range accountIDs {
		if _, ok := locked[accID]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accID)
		}
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}
	return nil
}

// SaveTransaction inserts a transaction and applies its balance effect in one
// database transaction.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.TransactionDate,
		m.SourceAccountID,
		m.DestinationAccountID,
		m.CategoryID,
		m.MinistryID,
		m.DeletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503":
				return fmt.Errorf("%w: transaction %s references a missing account or category", apperrors.ErrValidation, m.TransactionID)
			}
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	if err := r.applyBalanceChanges(ctx, tx, balanceChanges, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction rewrites a transaction, appends its audit entry and
// applies the combined balance delta atomically. The stored last_updated_at
// must still match expectedVersion under lock, otherwise the edit lost a race
// and apperrors.ErrConflict is returned.
func (r *PgxLedgerRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, expectedVersion time.Time, entry domain.AuditLogEntry, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var storedVersion time.Time
	err = tx.QueryRow(ctx,
		`SELECT last_updated_at FROM transactions WHERE transaction_id = $1 FOR UPDATE;`,
		txn.TransactionID,
	).Scan(&storedVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock transaction "+txn.TransactionID, err)
	}
	if !storedVersion.Equal(expectedVersion) {
		return fmt.Errorf("%w: transaction %s was modified concurrently", apperrors.ErrConflict, txn.TransactionID)
	}

	m := mapping.ToModelTransaction(txn)
	updateQuery := `
		UPDATE transactions
		SET description = $2, amount = $3, currency_code = $4,
		    transaction_date = $5,
		    source_account_id = $6, destination_account_id = $7,
		    category_id = $8, ministry_id = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		m.TransactionID,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.TransactionDate,
		m.SourceAccountID,
		m.DestinationAccountID,
		m.CategoryID,
		m.MinistryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: transaction %s references a missing account or category", apperrors.ErrValidation, m.TransactionID)
		}
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}

	me := mapping.ToModelAuditLogEntry(entry)
	auditQuery := `
		INSERT INTO audit_log (
			audit_id, transaction_id, changed_by, change_reason,
			old_amount, new_amount,
			old_source_account_id, new_source_account_id,
			old_destination_account_id, new_destination_account_id,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, auditQuery,
		me.AuditID,
		me.TransactionID,
		me.ChangedBy,
		me.ChangeReason,
		me.OldAmount,
		me.NewAmount,
		me.OldSourceAccountID,
		me.NewSourceAccountID,
		me.OldDestinationAccountID,
		me.NewDestinationAccountID,
		me.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit entry for transaction "+m.TransactionID, err)
	}

	if err := r.applyBalanceChanges(ctx, tx, balanceChanges, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SetTransactionDeleted sets or clears the soft-delete marker and applies the
// accompanying balance reversal in the same database transaction.
func (r *PgxLedgerRepository) SetTransactionDeleted(ctx context.Context, transactionID string, deletedAt *time.Time, userID string, now time.Time, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transactions
		SET deleted_at = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, transactionID, deletedAt, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set deletion marker on transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.applyBalanceChanges(ctx, tx, balanceChanges, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// PurgeTransaction hard-deletes a soft-deleted transaction together with its
// audit trail. Balances were already reversed when the row entered the trash,
// so no balance work happens here.
func (r *PgxLedgerRepository) PurgeTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM audit_log WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to purge audit entries for transaction "+transactionID, err)
	}

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND deleted_at IS NOT NULL;`,
		transactionID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to purge transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the row does not exist or it is still live.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1);`,
			transactionID,
		).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check transaction "+transactionID+" during purge", err)
		}
		if exists {
			return fmt.Errorf("%w: transaction %s is not deleted", apperrors.ErrConflict, transactionID)
		}
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID, including
// soft-deleted rows.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves a filtered page of transactions ordered newest
// first using token-based pagination.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to detect whether a next page exists.
	fetchLimit := limit + 1

	conditions := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.DeletedOnly {
		conditions = append(conditions, "deleted_at IS NOT NULL")
	} else {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	if filter.From != nil {
		conditions = append(conditions, "transaction_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "transaction_date <= "+arg(*filter.To))
	}
	if filter.AccountID != nil {
		p := arg(*filter.AccountID)
		conditions = append(conditions, "(source_account_id = "+p+" OR destination_account_id = "+p+")")
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id = "+arg(*filter.CategoryID))
	}
	if filter.MinistryID != nil {
		conditions = append(conditions, "ministry_id = "+arg(*filter.MinistryID))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		conditions = append(conditions, "(transaction_date, created_at) < ("+arg(lastDate)+", "+arg(lastCreatedAt)+")")
	}

	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT ` + arg(fetchLimit) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}
