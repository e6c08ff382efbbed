package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditLogEntry is the database representation of a transaction edit record.
type AuditLogEntry struct {
	AuditID                 string          `db:"audit_id"`
	TransactionID           string          `db:"transaction_id"`
	ChangedBy               string          `db:"changed_by"`
	ChangeReason            string          `db:"change_reason"`
	OldAmount               decimal.Decimal `db:"old_amount"`
	NewAmount               decimal.Decimal `db:"new_amount"`
	OldSourceAccountID      string          `db:"old_source_account_id"`
	NewSourceAccountID      string          `db:"new_source_account_id"`
	OldDestinationAccountID string          `db:"old_destination_account_id"`
	NewDestinationAccountID string          `db:"new_destination_account_id"`
	CreatedAt               time.Time       `db:"created_at"`
}
