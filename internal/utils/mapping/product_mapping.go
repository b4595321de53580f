package mapping

import (
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	"github.com/TraceKeep/custody_ledger_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:           d.ProductID,
		Name:                d.Name,
		Description:         d.Description,
		CurrentOwner:        d.CurrentOwner,
		CurrentStatus:       models.ProductStatus(d.CurrentStatus),
		CurrentLocation:     d.CurrentLocation,
		CreatedAt:           d.CreatedAt,
		IsActive:            d.IsActive,
		JournalEntriesCount: d.JournalEntriesCount,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:           m.ProductID,
		Name:                m.Name,
		Description:         m.Description,
		CurrentOwner:        m.CurrentOwner,
		CurrentStatus:       domain.ProductStatus(m.CurrentStatus),
		CurrentLocation:     m.CurrentLocation,
		CreatedAt:           m.CreatedAt,
		IsActive:            m.IsActive,
		JournalEntriesCount: m.JournalEntriesCount,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
