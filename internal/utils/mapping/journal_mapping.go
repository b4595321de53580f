package mapping

import (
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	"github.com/TraceKeep/custody_ledger_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ProductID:   d.ProductID,
		EntryNumber: d.EntryNumber,
		Owner:       d.Owner,
		Timestamp:   d.Timestamp,
		Title:       d.Title,
		Message:     d.Message,
		Status:      d.Status,
		Location:    d.Location,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ProductID:   m.ProductID,
		EntryNumber: m.EntryNumber,
		Owner:       m.Owner,
		Timestamp:   m.Timestamp,
		Title:       m.Title,
		Message:     m.Message,
		Status:      m.Status,
		Location:    m.Location,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
