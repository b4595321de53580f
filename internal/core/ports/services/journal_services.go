package services

import (
	"context"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
)

// JournalSvcFacade exposes read access to a product's audit history.
type JournalSvcFacade interface {
	// GetEntry returns a single journal entry by sequence number.
	GetEntry(ctx context.Context, productID string, entryNumber uint64) (*domain.JournalEntry, error)

	// ListEntries returns a product's history page, ascending by entry number.
	ListEntries(ctx context.Context, productID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}
