package mapping

import (
	"strings"
	"testing"
	"time"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	"github.com/TraceKeep/custody_ledger_app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProductMappingRoundTrip(t *testing.T) {
	// Every string field at its reserved capacity, every other field non-zero.
	original := domain.Product{
		ProductID:           strings.Repeat("p", domain.MaxProductIDLen),
		Name:                strings.Repeat("n", domain.MaxProductNameLen),
		Description:         strings.Repeat("d", domain.MaxDescriptionLen),
		CurrentOwner:        "11111111-2222-3333-4444-555555555555",
		CurrentStatus:       domain.StatusTransferred,
		CurrentLocation:     strings.Repeat("l", domain.MaxLocationLen),
		CreatedAt:           time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
		IsActive:            true,
		JournalEntriesCount: 42,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
			CreatedBy:     "creator-user-id",
			LastUpdatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			LastUpdatedBy: "updater-user-id",
		},
	}

	roundTripped := ToDomainProduct(ToModelProduct(original))
	assert.Equal(t, original, roundTripped, "Product should survive domain->model->domain unchanged")
}

func TestJournalEntryMappingRoundTrip(t *testing.T) {
	original := domain.JournalEntry{
		ProductID:   strings.Repeat("p", domain.MaxProductIDLen),
		EntryNumber: 7,
		Owner:       "11111111-2222-3333-4444-555555555555",
		Timestamp:   time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
		Title:       strings.Repeat("t", domain.MaxEntryTitleLen),
		Message:     strings.Repeat("m", domain.MaxEntryMessageLen),
		Status:      strings.Repeat("s", domain.MaxEntryStatusLen),
		Location:    strings.Repeat("l", domain.MaxEntryLocationLen),
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
			CreatedBy:     "creator-user-id",
			LastUpdatedAt: time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
			LastUpdatedBy: "creator-user-id",
		},
	}

	roundTripped := ToDomainJournalEntry(ToModelJournalEntry(original))
	assert.Equal(t, original, roundTripped, "Journal entry should survive domain->model->domain unchanged")
}

func TestProductSliceMappingPreservesOrder(t *testing.T) {
	first := domain.Product{ProductID: "first", CurrentStatus: domain.StatusCreated, IsActive: true}
	second := domain.Product{ProductID: "second", CurrentStatus: domain.StatusDelivered, JournalEntriesCount: 3}

	ms := []models.Product{ToModelProduct(first), ToModelProduct(second)}
	ds := ToDomainProductSlice(ms)

	assert.Len(t, ds, 2)
	assert.Equal(t, first, ds[0])
	assert.Equal(t, second, ds[1])
}

func TestJournalEntrySliceMappingPreservesOrder(t *testing.T) {
	e0 := domain.JournalEntry{ProductID: "p1", EntryNumber: 0, Title: domain.RegistrationTitle}
	e1 := domain.JournalEntry{ProductID: "p1", EntryNumber: 1, Title: "Custody Transfer"}

	ms := []models.JournalEntry{ToModelJournalEntry(e0), ToModelJournalEntry(e1)}
	ds := ToDomainJournalEntrySlice(ms)

	assert.Len(t, ds, 2)
	assert.Equal(t, e0, ds[0])
	assert.Equal(t, e1, ds[1])
}
