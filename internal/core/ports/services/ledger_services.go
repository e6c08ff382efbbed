package services

import (
	"context"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/parishkeep/church_treasury_app/internal/dto"
)

// LedgerReaderSvc defines read operations for transaction data
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves a transaction, including soft-deleted ones.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, token-paginated page of
	// transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// GetTransactionHistory retrieves the edit trail of a transaction,
	// oldest entry first.
	GetTransactionHistory(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error)
}

// LedgerWriterSvc defines write operations for transaction data
type LedgerWriterSvc interface {
	// RecordTransaction persists a new movement and applies its balance
	// effect to both accounts atomically.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error)

	// EditTransaction rewrites a transaction, reverses the old balance effect,
	// applies the new one and appends exactly one audit entry, all atomically.
	EditTransaction(ctx context.Context, transactionID string, req dto.EditTransactionRequest, userID string) (*domain.Transaction, error)

	// SoftDeleteTransaction moves a live transaction to the trash and reverses
	// its balance effect. Deleting an already deleted transaction is a conflict.
	SoftDeleteTransaction(ctx context.Context, transactionID string, userID string) error

	// RestoreTransaction brings a trashed transaction back and re-applies its
	// balance effect. Conflicts when the transaction is live or when either
	// referenced account is gone or inactive.
	RestoreTransaction(ctx context.Context, transactionID string, userID string) error

	// PurgeTransaction permanently removes a soft-deleted transaction and its
	// audit trail. Refused for live rows and when hard deletes are disabled.
	PurgeTransaction(ctx context.Context, transactionID string, userID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
