package services

import (
	"context"
	"errors"
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

var (
	ErrSameAccount       = errors.New("source and destination accounts must differ")
	ErrAmountNotPositive = errors.New("transaction amount must be positive")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrCurrencyMismatch  = errors.New("source and destination account currencies do not match")
	ErrEditDeleted       = errors.New("cannot edit a deleted transaction")
)

// ledgerService provides transaction recording, editing and trash operations.
type ledgerService struct {
	BaseService
	ledgerRepo      portsrepo.LedgerRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	auditRepo       portsrepo.AuditLogRepository
	categoryRepo    portsrepo.CategoryRepository
	ministryRepo    portsrepo.MinistryRepository
	allowHardDelete bool
}

// NewLedgerService creates a new ledger service. allowHardDelete gates purge;
// it is off in production deployments.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	auditRepo portsrepo.AuditLogRepository,
	categoryRepo portsrepo.CategoryRepository,
	ministryRepo portsrepo.MinistryRepository,
	allowHardDelete bool,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:      ledgerRepo,
		accountRepo:     accountRepo,
		auditRepo:       auditRepo,
		categoryRepo:    categoryRepo,
		ministryRepo:    ministryRepo,
		allowHardDelete: allowHardDelete,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateMovement checks the structural rules every movement must satisfy
// and returns the currency both accounts share.
func (s *ledgerService) validateMovement(ctx context.Context, amount decimal.Decimal, sourceID, destinationID string, categoryID, ministryID *string) (string, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", fmt.Errorf("%w: got %s", ErrAmountNotPositive, amount.String())
	}
	if sourceID == destinationID {
		return "", ErrSameAccount
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{sourceID, destinationID})
	if err != nil {
		return "", err
	}
	source, ok := accounts[sourceID]
	if !ok {
		return "", fmt.Errorf("%w: source account %s", apperrors.ErrNotFound, sourceID)
	}
	destination, ok := accounts[destinationID]
	if !ok {
		return "", fmt.Errorf("%w: destination account %s", apperrors.ErrNotFound, destinationID)
	}
	if !source.IsActive {
		return "", fmt.Errorf("%w: source account %s", ErrAccountInactive, sourceID)
	}
	if !destination.IsActive {
		return "", fmt.Errorf("%w: destination account %s", ErrAccountInactive, destinationID)
	}
	if source.CurrencyCode != destination.CurrencyCode {
		return "", fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, source.CurrencyCode, destination.CurrencyCode)
	}

	if categoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, *categoryID)
			}
			return "", err
		}
	}
	if ministryID != nil {
		if _, err := s.ministryRepo.FindMinistryByID(ctx, *ministryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: unknown ministry %s", apperrors.ErrValidation, *ministryID)
			}
			return "", err
		}
	}

	return source.CurrencyCode, nil
}

// RecordTransaction persists a new movement. The amount leaves the source
// account and arrives at the destination account atomically.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest, userID string) (*domain.Transaction, error) {
	currency, err := s.validateMovement(ctx, req.Amount, req.SourceAccountID, req.DestinationAccountID, req.CategoryID, req.MinistryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		Description:          req.Description,
		Amount:               req.Amount,
		CurrencyCode:         currency,
		TransactionDate:      req.TransactionDate,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		CategoryID:           req.CategoryID,
		MinistryID:           req.MinistryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn, txn.BalanceEffect()); err != nil {
		s.LogError(ctx, err, "failed to record transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// GetTransactionByID retrieves a transaction, trashed ones included.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.ledgerRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves a filtered page of transactions.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	filter := portsrepo.TransactionFilter{
		From:        params.From,
		To:          params.To,
		AccountID:   params.AccountID,
		CategoryID:  params.CategoryID,
		MinistryID:  params.MinistryID,
		DeletedOnly: params.DeletedOnly,
	}
	return s.ledgerRepo.ListTransactions(ctx, filter, params.Limit, params.NextToken)
}

// GetTransactionHistory retrieves the edit trail of a transaction.
func (s *ledgerService) GetTransactionHistory(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error) {
	if _, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return nil, err
	}
	return s.auditRepo.FindEntriesByTransactionID(ctx, transactionID)
}

// EditTransaction rewrites a movement. The old balance effect is reversed and
// the new one applied in the same atomic unit, together with exactly one
// audit entry capturing the before and after values.
func (s *ledgerService) EditTransaction(ctx context.Context, transactionID string, req dto.EditTransactionRequest, userID string) (*domain.Transaction, error) {
	existing, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if existing.IsDeleted() {
		return nil, fmt.Errorf("%w: transaction %s", ErrEditDeleted, transactionID)
	}

	updated := *existing
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.SourceAccountID != nil {
		updated.SourceAccountID = *req.SourceAccountID
	}
	if req.DestinationAccountID != nil {
		updated.DestinationAccountID = *req.DestinationAccountID
	}
	if req.TransactionDate != nil {
		updated.TransactionDate = *req.TransactionDate
	}
	if req.CategoryID != nil {
		updated.CategoryID = req.CategoryID
	}
	if req.MinistryID != nil {
		updated.MinistryID = req.MinistryID
	}

	currency, err := s.validateMovement(ctx, updated.Amount, updated.SourceAccountID, updated.DestinationAccountID, updated.CategoryID, updated.MinistryID)
	if err != nil {
		return nil, err
	}
	// Moving to accounts in another shared currency re-denominates the row.
	updated.CurrencyCode = currency

	now := time.Now()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	reason := req.Reason
	if reason == "" {
		reason = domain.DefaultChangeReason
	}
	entry := domain.AuditLogEntry{
		AuditID:                 uuid.NewString(),
		TransactionID:           transactionID,
		ChangedBy:               userID,
		ChangeReason:            reason,
		OldAmount:               existing.Amount,
		NewAmount:               updated.Amount,
		OldSourceAccountID:      existing.SourceAccountID,
		NewSourceAccountID:      updated.SourceAccountID,
		OldDestinationAccountID: existing.DestinationAccountID,
		NewDestinationAccountID: updated.DestinationAccountID,
		CreatedAt:               now,
	}

	balanceChanges := domain.MergeBalanceChanges(existing.ReversedBalanceEffect(), updated.BalanceEffect())
	if err := s.ledgerRepo.UpdateTransaction(ctx, updated, existing.LastUpdatedAt, entry, balanceChanges); err != nil {
		s.LogError(ctx, err, "failed to edit transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "transaction edited",
		slog.String("transaction_id", transactionID),
		slog.String("reason", reason))
	return &updated, nil
}

// SoftDeleteTransaction moves a transaction to the trash and reverses its
// balance effect. Deleting an already trashed transaction is a conflict.
func (s *ledgerService) SoftDeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.IsDeleted() {
		return fmt.Errorf("%w: transaction %s is already deleted", apperrors.ErrConflict, transactionID)
	}

	now := time.Now()
	if err := s.ledgerRepo.SetTransactionDeleted(ctx, transactionID, &now, userID, now, txn.ReversedBalanceEffect()); err != nil {
		s.LogError(ctx, err, "failed to soft-delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "transaction moved to trash", slog.String("transaction_id", transactionID))
	return nil
}

// RestoreTransaction brings a trashed transaction back and re-applies its
// balance effect. Restoring a live transaction is a conflict, as is restoring
// onto an account that is gone or was deactivated while the row sat in the
// trash.
func (s *ledgerService) RestoreTransaction(ctx context.Context, transactionID string, userID string) error {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if !txn.IsDeleted() {
		return fmt.Errorf("%w: transaction %s is not deleted", apperrors.ErrConflict, transactionID)
	}

	accountIDs := []string{txn.SourceAccountID, txn.DestinationAccountID}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return err
	}
	for _, accountID := range accountIDs {
		account, ok := accounts[accountID]
		if !ok {
			return fmt.Errorf("%w: account %s no longer exists", apperrors.ErrConflict, accountID)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s was deactivated", apperrors.ErrConflict, accountID)
		}
	}

	now := time.Now()
	if err := s.ledgerRepo.SetTransactionDeleted(ctx, transactionID, nil, userID, now, txn.BalanceEffect()); err != nil {
		s.LogError(ctx, err, "failed to restore transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "transaction restored", slog.String("transaction_id", transactionID))
	return nil
}

// PurgeTransaction permanently removes a trashed transaction and its audit
// trail. Requires hard deletes to be enabled and the row to already be in
// the trash.
func (s *ledgerService) PurgeTransaction(ctx context.Context, transactionID string, userID string) error {
	if !s.allowHardDelete {
		return fmt.Errorf("%w: hard deletes are disabled", apperrors.ErrForbidden)
	}

	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if !txn.IsDeleted() {
		return fmt.Errorf("%w: transaction %s must be deleted before purging", apperrors.ErrConflict, transactionID)
	}

	if err := s.ledgerRepo.PurgeTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "failed to purge transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogWarn(ctx, "transaction purged permanently",
		slog.String("transaction_id", transactionID),
		slog.String("user_id", userID))
	return nil
}
