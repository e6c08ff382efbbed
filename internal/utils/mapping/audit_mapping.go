package mapping

import (
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/parishkeep/church_treasury_app/internal/models"
)

// ToModelAuditLogEntry converts a domain audit entry to its database model.
func ToModelAuditLogEntry(d domain.AuditLogEntry) models.AuditLogEntry {
	return models.AuditLogEntry{
		AuditID:                 d.AuditID,
		TransactionID:           d.TransactionID,
		ChangedBy:               d.ChangedBy,
		ChangeReason:            d.ChangeReason,
		OldAmount:               d.OldAmount,
		NewAmount:               d.NewAmount,
		OldSourceAccountID:      d.OldSourceAccountID,
		NewSourceAccountID:      d.NewSourceAccountID,
		OldDestinationAccountID: d.OldDestinationAccountID,
		NewDestinationAccountID: d.NewDestinationAccountID,
		CreatedAt:               d.CreatedAt,
	}
}

// ToDomainAuditLogEntry converts a database audit entry model to its domain form.
func ToDomainAuditLogEntry(m models.AuditLogEntry) domain.AuditLogEntry {
	return domain.AuditLogEntry{
		AuditID:                 m.AuditID,
		TransactionID:           m.TransactionID,
		ChangedBy:               m.ChangedBy,
		ChangeReason:            m.ChangeReason,
		OldAmount:               m.OldAmount,
		NewAmount:               m.NewAmount,
		OldSourceAccountID:      m.OldSourceAccountID,
		NewSourceAccountID:      m.NewSourceAccountID,
		OldDestinationAccountID: m.OldDestinationAccountID,
		NewDestinationAccountID: m.NewDestinationAccountID,
		CreatedAt:               m.CreatedAt,
	}
}

// ToDomainAuditLogEntrySlice converts a slice of audit entry models.
func ToDomainAuditLogEntrySlice(ms []models.AuditLogEntry) []domain.AuditLogEntry {
	ds := make([]domain.AuditLogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLogEntry(m)
	}
	return ds
}
