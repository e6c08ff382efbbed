package mapping

import (
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/parishkeep/church_treasury_app/internal/models"
)

// ToModelBudget converts a domain budget to its database model.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		CategoryID:  d.CategoryID,
		MinistryID:  d.MinistryID,
		Year:        d.Year,
		AmountLimit: d.AmountLimit,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a database budget model to its domain form.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		CategoryID:  m.CategoryID,
		MinistryID:  m.MinistryID,
		Year:        m.Year,
		AmountLimit: m.AmountLimit,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetSlice converts a slice of budget models.
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
