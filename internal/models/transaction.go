package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a double-entry movement.
// Amount is always positive; direction is carried by the account columns.
type Transaction struct {
	TransactionID        string          `db:"transaction_id"`
	Description          string          `db:"description"`
	Amount               decimal.Decimal `db:"amount"`
	CurrencyCode         string          `db:"currency_code"`
	TransactionDate      time.Time       `db:"transaction_date"`
	SourceAccountID      string          `db:"source_account_id"`
	DestinationAccountID string          `db:"destination_account_id"`
	CategoryID           *string         `db:"category_id"`
	MinistryID           *string         `db:"ministry_id"`
	DeletedAt            *time.Time      `db:"deleted_at"`
	AuditFields
}
