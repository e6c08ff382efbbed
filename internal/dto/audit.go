package dto

import (
	"time"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AuditLogEntryResponse defines the data returned for one edit record.
type AuditLogEntryResponse struct {
	AuditID                 string          `json:"auditID"`
	TransactionID           string          `json:"transactionID"`
	ChangedBy               string          `json:"changedBy"`
	ChangeReason            string          `json:"changeReason"`
	OldAmount               decimal.Decimal `json:"oldAmount"`
	NewAmount               decimal.Decimal `json:"newAmount"`
	OldSourceAccountID      string          `json:"oldSourceAccountID"`
	NewSourceAccountID      string          `json:"newSourceAccountID"`
	OldDestinationAccountID string          `json:"oldDestinationAccountID"`
	NewDestinationAccountID string          `json:"newDestinationAccountID"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// ToAuditLogEntryResponse converts a domain.AuditLogEntry to its response DTO.
func ToAuditLogEntryResponse(e *domain.AuditLogEntry) AuditLogEntryResponse {
	return AuditLogEntryResponse{
		AuditID:                 e.AuditID,
		TransactionID:           e.TransactionID,
		ChangedBy:               e.ChangedBy,
		ChangeReason:            e.ChangeReason,
		OldAmount:               e.OldAmount,
		NewAmount:               e.NewAmount,
		OldSourceAccountID:      e.OldSourceAccountID,
		NewSourceAccountID:      e.NewSourceAccountID,
		OldDestinationAccountID: e.OldDestinationAccountID,
		NewDestinationAccountID: e.NewDestinationAccountID,
		CreatedAt:               e.CreatedAt,
	}
}

// ToAuditLogEntryResponses converts a slice of domain audit entries.
func ToAuditLogEntryResponses(entries []domain.AuditLogEntry) []AuditLogEntryResponse {
	responses := make([]AuditLogEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToAuditLogEntryResponse(&e)
	}
	return responses
}
