package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
)

// TransactionFilter narrows a ledger listing. Nil fields are ignored.
type TransactionFilter struct {
	From        *time.Time
	To          *time.Time
	AccountID   *string // matches either side of the movement
	CategoryID  *string
	MinistryID  *string
	DeletedOnly bool // true lists only the trash; false excludes it
}

// LedgerReader defines read operations for transaction data.
type LedgerReader interface {
	// FindTransactionByID retrieves a transaction, including soft-deleted rows.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions ordered newest
	// transaction_date first (created_at tie-break) using token pagination.
	ListTransactions(ctx context.Context, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// LedgerWriter defines the atomic write units of the ledger. Every method
// that carries balanceChanges applies them to the account rows inside the
// same database transaction as the row mutation, or not at all.
type LedgerWriter interface {
	// SaveTransaction inserts a transaction and applies its balance effect.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// UpdateTransaction rewrites a transaction, appends its audit entry and
	// applies the combined balance delta. expectedVersion is the
	// last_updated_at the caller read; a mismatch under lock yields
	// apperrors.ErrConflict so stale edits never overwrite newer ones.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, expectedVersion time.Time, entry domain.AuditLogEntry, balanceChanges map[string]decimal.Decimal) error

	// SetTransactionDeleted sets or clears the soft-delete marker and applies
	// the reversal (or re-application) of the balance effect.
	SetTransactionDeleted(ctx context.Context, transactionID string, deletedAt *time.Time, userID string, now time.Time, balanceChanges map[string]decimal.Decimal) error

	// PurgeTransaction hard-deletes an already soft-deleted transaction and
	// its audit entries. Returns apperrors.ErrConflict when the row is live.
	PurgeTransaction(ctx context.Context, transactionID string) error
}

// LedgerRepositoryFacade combines ledger read and write operations.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends the facade with transaction control.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
