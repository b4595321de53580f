package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	portsrepo "github.com/TraceKeep/custody_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
	"github.com/TraceKeep/custody_ledger_app/internal/middleware"
)

// productService implements the custody transition state machine.
//
// Every mutating method follows the same shape: load the product, check all
// preconditions (active state, ownership, field capacities) before staging any
// mutation, then hand the mutated product and exactly one new journal entry to
// the repository as a single atomic unit. The product's JournalEntriesCount is
// the sequence allocator: the count observed at load time is the new entry's
// number, and the repository's optimistic check on that count guarantees two
// racing writers cannot both claim it.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Ensure productService implements the portssvc.ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct registers a product and writes its entry-0 journal record in
// one atomic unit. Any caller may create; the creator becomes first custodian.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()

	product := domain.Product{
		ProductID:       req.ProductID,
		Name:            req.Name,
		Description:     req.Description,
		CurrentOwner:    creatorUserID,
		CurrentStatus:   domain.StatusCreated,
		CurrentLocation: domain.OriginLocation,
		CreatedAt:       now,
		IsActive:        true,
		// The creation entry counts, so the next sequence number is 1.
		JournalEntriesCount: 1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	entry := domain.JournalEntry{
		ProductID:   req.ProductID,
		EntryNumber: 0,
		Owner:       creatorUserID,
		Timestamp:   now,
		Title:       domain.RegistrationTitle,
		Message:     req.InitialNotes,
		Status:      string(domain.StatusCreated),
		Location:    domain.OriginLocation,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := validateCapacities(&product, &entry); err != nil {
		return nil, err
	}

	if err := s.productRepo.CreateProductWithEntry(ctx, product, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Product already exists", slog.String("product_id", req.ProductID))
			return nil, fmt.Errorf("product %s: %w", req.ProductID, apperrors.ErrDuplicate)
		}
		logger.Error("Failed to create product", slog.String("error", err.Error()), slog.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// GetProductByID returns the current product record.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find product", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts returns a paginated product listing.
func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	products, nextToken, err := s.productRepo.ListProducts(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list products from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	resp := &dto.ListProductsResponse{
		Products:  dto.ToProductResponses(products),
		NextToken: nextToken,
	}

	logger.Debug("Products listed", slog.Int("count", len(products)))
	return resp, nil
}

// AddJournalEntry appends a caller-described event to an active product the
// caller owns, updating the product's status label and location.
func (s *productService) AddJournalEntry(ctx context.Context, productID string, req dto.AddJournalEntryRequest, callerUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.loadOwnedActiveProduct(ctx, productID, callerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expectedCount := product.JournalEntriesCount
	entryNumber := product.NextEntryNumber()

	product.CurrentStatus = domain.ProductStatus(req.NewStatus)
	product.CurrentLocation = req.NewLocation
	product.JournalEntriesCount++
	product.LastUpdatedAt = now
	product.LastUpdatedBy = callerUserID

	entry := domain.JournalEntry{
		ProductID:   productID,
		EntryNumber: entryNumber,
		Owner:       callerUserID,
		Timestamp:   now,
		Title:       req.Title,
		Message:     req.Message,
		Status:      req.NewStatus,
		Location:    req.NewLocation,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     callerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: callerUserID,
		},
	}

	if err := validateCapacities(product, &entry); err != nil {
		return nil, err
	}

	if err := s.applyTransition(ctx, product, expectedCount, entry); err != nil {
		return nil, err
	}

	logger.Info("Journal entry added", slog.String("product_id", productID), slog.Uint64("entry_number", entryNumber))
	return &entry, nil
}

// TransferProduct moves custody to a new owner. The journal entry records the
// previous owner, since that is who authorized and performed the hand-off.
func (s *productService) TransferProduct(ctx context.Context, productID string, req dto.TransferProductRequest, callerUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.loadOwnedActiveProduct(ctx, productID, callerUserID)
	if err != nil {
		return nil, err
	}

	// The receiving principal must exist; custody cannot be handed to an
	// unknown identity.
	if _, err := s.userRepo.FindUserByID(ctx, req.NewOwnerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transfer target does not exist", slog.String("new_owner_id", req.NewOwnerID))
			return nil, fmt.Errorf("%w: new owner %s not found", apperrors.ErrValidation, req.NewOwnerID)
		}
		return nil, fmt.Errorf("failed to resolve new owner %s: %w", req.NewOwnerID, err)
	}

	now := time.Now().UTC()
	expectedCount := product.JournalEntriesCount
	entryNumber := product.NextEntryNumber()
	previousOwner := product.CurrentOwner

	product.CurrentOwner = req.NewOwnerID
	product.CurrentStatus = domain.StatusTransferred
	product.CurrentLocation = req.NewLocation
	product.JournalEntriesCount++
	product.LastUpdatedAt = now
	product.LastUpdatedBy = callerUserID

	entry := domain.JournalEntry{
		ProductID:   productID,
		EntryNumber: entryNumber,
		Owner:       previousOwner,
		Timestamp:   now,
		Title:       req.Title,
		Message:     req.Message,
		Status:      string(domain.StatusTransferred),
		Location:    req.NewLocation,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     callerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: callerUserID,
		},
	}

	if err := validateCapacities(product, &entry); err != nil {
		return nil, err
	}

	if err := s.applyTransition(ctx, product, expectedCount, entry); err != nil {
		return nil, err
	}

	logger.Info("Product transferred", slog.String("product_id", productID), slog.String("new_owner_id", req.NewOwnerID))
	return product, nil
}

// MarkDelivered marks the product delivered at its current location.
func (s *productService) MarkDelivered(ctx context.Context, productID string, req dto.MarkDeliveredRequest, callerUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.loadOwnedActiveProduct(ctx, productID, callerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expectedCount := product.JournalEntriesCount
	entryNumber := product.NextEntryNumber()

	product.CurrentStatus = domain.StatusDelivered
	product.JournalEntriesCount++
	product.LastUpdatedAt = now
	product.LastUpdatedBy = callerUserID

	entry := domain.JournalEntry{
		ProductID:   productID,
		EntryNumber: entryNumber,
		Owner:       callerUserID,
		Timestamp:   now,
		Title:       req.Title,
		Message:     req.Message,
		Status:      string(domain.StatusDelivered),
		Location:    product.CurrentLocation, // location unchanged by delivery
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     callerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: callerUserID,
		},
	}

	if err := validateCapacities(product, &entry); err != nil {
		return nil, err
	}

	if err := s.applyTransition(ctx, product, expectedCount, entry); err != nil {
		return nil, err
	}

	logger.Info("Product marked delivered", slog.String("product_id", productID))
	return product, nil
}

// DeactivateProduct terminally deactivates the product. After this transition
// no further custody mutations or journal entries are possible.
func (s *productService) DeactivateProduct(ctx context.Context, productID string, req dto.DeactivateProductRequest, callerUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.loadOwnedActiveProduct(ctx, productID, callerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expectedCount := product.JournalEntriesCount
	entryNumber := product.NextEntryNumber()

	product.IsActive = false
	product.CurrentStatus = domain.StatusDeactivated
	product.JournalEntriesCount++
	product.LastUpdatedAt = now
	product.LastUpdatedBy = callerUserID

	entry := domain.JournalEntry{
		ProductID:   productID,
		EntryNumber: entryNumber,
		Owner:       callerUserID,
		Timestamp:   now,
		Title:       req.Title,
		Message:     req.Reason,
		Status:      string(domain.StatusDeactivated),
		Location:    product.CurrentLocation,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     callerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: callerUserID,
		},
	}

	if err := validateCapacities(product, &entry); err != nil {
		return nil, err
	}

	if err := s.applyTransition(ctx, product, expectedCount, entry); err != nil {
		return nil, err
	}

	logger.Info("Product deactivated", slog.String("product_id", productID))
	return product, nil
}

// loadOwnedActiveProduct loads the product and enforces the two preconditions
// shared by every custody mutation: the product must be active, and the caller
// must be the current owner. Both checks run before any mutation is staged.
func (s *productService) loadOwnedActiveProduct(ctx context.Context, productID string, callerUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	if !product.IsActive {
		logger.Warn("Mutation attempted on inactive product", slog.String("product_id", productID))
		return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrProductInactive)
	}

	if product.CurrentOwner != callerUserID {
		logger.Warn("Caller is not the current owner", slog.String("product_id", productID), slog.String("owner", product.CurrentOwner))
		return nil, fmt.Errorf("caller is not the owner of product %s: %w", productID, apperrors.ErrForbidden)
	}

	return product, nil
}

// applyTransition hands the mutated product and its new journal entry to the
// repository and maps a lost sequence race to the retryable sentinel.
func (s *productService) applyTransition(ctx context.Context, product *domain.Product, expectedCount uint64, entry domain.JournalEntry) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.ApplyTransition(ctx, *product, expectedCount, entry); err != nil {
		if errors.Is(err, apperrors.ErrSequenceConflict) {
			logger.Warn("Lost journal sequence race", slog.String("product_id", product.ProductID), slog.Uint64("entry_number", entry.EntryNumber))
			return fmt.Errorf("entry %d of product %s: %w", entry.EntryNumber, product.ProductID, apperrors.ErrSequenceConflict)
		}
		logger.Error("Failed to apply transition", slog.String("error", err.Error()), slog.String("product_id", product.ProductID))
		return fmt.Errorf("failed to apply transition: %w", err)
	}
	return nil
}

// validateCapacities rejects any field exceeding its reserved capacity before
// the operation stages a write. Inputs are bounded at the DTO layer as well;
// this is the authoritative check on the final record values.
func validateCapacities(product *domain.Product, entry *domain.JournalEntry) error {
	if err := product.ValidateCapacities(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCapacityExceeded, err)
	}
	if err := entry.ValidateCapacities(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCapacityExceeded, err)
	}
	return nil
}
