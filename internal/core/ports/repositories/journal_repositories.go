package repositories

import (
	"context"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
)

// JournalRepositoryFacade reads the append-only journal. There are deliberately
// no update or delete methods: entries are immutable once written.
type JournalRepositoryFacade interface {
	// FindEntryByNumber loads one entry by its derived address
	// (product_id, entry_number). Returns apperrors.ErrNotFound if absent.
	FindEntryByNumber(ctx context.Context, productID string, entryNumber uint64) (*domain.JournalEntry, error)

	// ListEntriesByProduct returns a page of a product's history ordered by
	// entry number ascending, plus a cursor token when more pages exist.
	ListEntriesByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}
