package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	portsrepo "github.com/TraceKeep/custody_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
	"github.com/TraceKeep/custody_ledger_app/internal/middleware"
)

// journalService provides read access to product custody history.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		productRepo: productRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// GetEntry returns a single journal entry by its sequence number.
func (s *journalService) GetEntry(ctx context.Context, productID string, entryNumber uint64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByNumber(ctx, productID, entryNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("product_id", productID), slog.Uint64("entry_number", entryNumber))
		}
		return nil, fmt.Errorf("failed to find entry %d of product %s: %w", entryNumber, productID, err)
	}

	return entry, nil
}

// ListEntries returns one page of a product's history, ascending by entry
// number so the page order mirrors the order events actually happened.
func (s *journalService) ListEntries(ctx context.Context, productID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Resolve the product first so a bad product ID surfaces as NotFound
	// rather than an empty history.
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product for history listing", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByProduct(ctx, productID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journal entries", "error", err)
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}

	logger.Debug("Journal entries listed", slog.String("product_id", productID), slog.Int("count", len(entries)))
	return resp, nil
}
