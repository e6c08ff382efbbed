package dto

import (
	"time"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a movement.
type RecordTransactionRequest struct {
	Description          string          `json:"description" binding:"required"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	SourceAccountID      string          `json:"sourceAccountID" binding:"required"`
	DestinationAccountID string          `json:"destinationAccountID" binding:"required"`
	TransactionDate      time.Time       `json:"transactionDate" binding:"required"`
	CategoryID           *string         `json:"categoryID"`
	MinistryID           *string         `json:"ministryID"`
}

// EditTransactionRequest defines the fields an edit may change. Pointers
// distinguish "not provided" from zero values; omitted fields keep their
// current value.
type EditTransactionRequest struct {
	Description          *string          `json:"description"`
	Amount               *decimal.Decimal `json:"amount"`
	SourceAccountID      *string          `json:"sourceAccountID"`
	DestinationAccountID *string          `json:"destinationAccountID"`
	TransactionDate      *time.Time       `json:"transactionDate"`
	CategoryID           *string          `json:"categoryID"`
	MinistryID           *string          `json:"ministryID"`
	Reason               string           `json:"reason"` // Defaults to a generic note when empty
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	CurrencyCode         string          `json:"currencyCode"`
	TransactionDate      time.Time       `json:"transactionDate"`
	SourceAccountID      string          `json:"sourceAccountID"`
	DestinationAccountID string          `json:"destinationAccountID"`
	CategoryID           *string         `json:"categoryID,omitempty"`
	MinistryID           *string         `json:"ministryID,omitempty"`
	DeletedAt            *time.Time      `json:"deletedAt,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		Description:          txn.Description,
		Amount:               txn.Amount,
		CurrencyCode:         txn.CurrencyCode,
		TransactionDate:      txn.TransactionDate,
		SourceAccountID:      txn.SourceAccountID,
		DestinationAccountID: txn.DestinationAccountID,
		CategoryID:           txn.CategoryID,
		MinistryID:           txn.MinistryID,
		DeletedAt:            txn.DeletedAt,
		CreatedAt:            txn.CreatedAt,
		CreatedBy:            txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsParams defines filters for listing transactions.
type ListTransactionsParams struct {
	From        *time.Time `form:"from" time_format:"2006-01-02"`
	To          *time.Time `form:"to" time_format:"2006-01-02"`
	AccountID   *string    `form:"accountID"`
	CategoryID  *string    `form:"categoryID"`
	MinistryID  *string    `form:"ministryID"`
	DeletedOnly bool       `form:"deletedOnly"`
	Limit       int        `form:"limit,default=20"`
	NextToken   *string    `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
