package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultChangeReason is stored when an edit is submitted without a reason.
// The fallback is a deliberate UX policy, not a silent default: the audit row
// must never be blank.
const DefaultChangeReason = "Manual adjustment"

// AuditLogEntry records the before/after state of a single transaction edit.
// Entries are append-only and written in the same database transaction as
// the edit itself, so their count always equals the number of successful edits.
type AuditLogEntry struct {
	AuditID                 string          `json:"auditID"` // Primary Key (UUID)
	TransactionID           string          `json:"transactionID"`
	ChangedBy               string          `json:"changedBy"` // UserID reference
	ChangeReason            string          `json:"changeReason"`
	OldAmount               decimal.Decimal `json:"oldAmount"`
	NewAmount               decimal.Decimal `json:"newAmount"`
	OldSourceAccountID      string          `json:"oldSourceAccountID"`
	NewSourceAccountID      string          `json:"newSourceAccountID"`
	OldDestinationAccountID string          `json:"oldDestinationAccountID"`
	NewDestinationAccountID string          `json:"newDestinationAccountID"`
	CreatedAt               time.Time       `json:"createdAt"`
}
