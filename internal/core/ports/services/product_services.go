package services

import (
	"context"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
)

// ProductSvcFacade exposes the custody state machine. Each mutating method is
// one atomic transition: it validates preconditions, mutates the product, and
// appends exactly one journal entry, or fails with no side effects.
type ProductSvcFacade interface {
	// CreateProduct registers a product and writes journal entry 0.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// GetProductByID returns the current product record.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns a paginated product listing.
	ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error)

	// AddJournalEntry appends a caller-described event, updating the product's
	// status label and location. Requires the caller to be the current owner of
	// an active product.
	AddJournalEntry(ctx context.Context, productID string, req dto.AddJournalEntryRequest, callerUserID string) (*domain.JournalEntry, error)

	// TransferProduct moves custody to a new owner. The journal entry records
	// the previous owner as the acting custodian.
	TransferProduct(ctx context.Context, productID string, req dto.TransferProductRequest, callerUserID string) (*domain.Product, error)

	// MarkDelivered marks the product delivered at its current location.
	MarkDelivered(ctx context.Context, productID string, req dto.MarkDeliveredRequest, callerUserID string) (*domain.Product, error)

	// DeactivateProduct terminally deactivates the product.
	DeactivateProduct(ctx context.Context, productID string, req dto.DeactivateProductRequest, callerUserID string) (*domain.Product, error)
}
