package repositories

import (
	"context"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
)

// ProductRepositoryFacade persists product records and applies custody transitions.
//
// Both mutating methods are atomic units: the product write and the journal
// entry insert succeed together or not at all, with no intermediate state
// visible to concurrent readers.
type ProductRepositoryFacade interface {
	// CreateProductWithEntry inserts a new product together with its entry-0
	// journal record. Returns apperrors.ErrDuplicate if a product already
	// exists at the address derived from the product ID.
	CreateProductWithEntry(ctx context.Context, product domain.Product, entry domain.JournalEntry) error

	// FindProductByID loads the current product record.
	// Returns apperrors.ErrNotFound if absent.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns a page of products ordered by creation time
	// descending, plus a cursor token when more pages exist.
	ListProducts(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error)

	// ApplyTransition persists an already-mutated product alongside exactly one
	// new journal entry. expectedCount is the journal_entries_count the caller
	// observed before mutating; if another writer committed in between, no row
	// matches and apperrors.ErrSequenceConflict is returned with no side effects.
	ApplyTransition(ctx context.Context, product domain.Product, expectedCount uint64, entry domain.JournalEntry) error
}
