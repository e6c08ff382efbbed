package mapping

import (
	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	"github.com/parishkeep/church_treasury_app/internal/models"
)

// ToModelCategory converts a domain category to its database model.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		CategoryType: models.CategoryType(d.CategoryType),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a database category model to its domain form.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		CategoryType: domain.CategoryType(m.CategoryType),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of category models.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToModelMinistry converts a domain ministry to its database model.
func ToModelMinistry(d domain.Ministry) models.Ministry {
	return models.Ministry{
		MinistryID:  d.MinistryID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMinistry converts a database ministry model to its domain form.
func ToDomainMinistry(m models.Ministry) domain.Ministry {
	return domain.Ministry{
		MinistryID:  m.MinistryID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMinistrySlice converts a slice of ministry models.
func ToDomainMinistrySlice(ms []models.Ministry) []domain.Ministry {
	ds := make([]domain.Ministry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMinistry(m)
	}
	return ds
}
