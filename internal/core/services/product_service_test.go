package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/core/services"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) CreateProductWithEntry(ctx context.Context, product domain.Product, entry domain.JournalEntry) error {
	args := m.Called(ctx, product, entry)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return products, token, args.Error(2)
}

func (m *MockProductRepository) ApplyTransition(ctx context.Context, product domain.Product, expectedCount uint64, entry domain.JournalEntry) error {
	args := m.Called(ctx, product, expectedCount, entry)
	return args.Error(0)
}

// --- Mock UserRepository (only what the product service needs) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.ProductSvcFacade
	ownerID         string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewProductService(suite.mockProductRepo, suite.mockUserRepo)
	suite.ownerID = uuid.NewString()
}

// activeProduct builds a fresh active product owned by suite.ownerID with the
// given number of journal entries already written.
func (suite *ProductServiceTestSuite) activeProduct(productID string, entryCount uint64) *domain.Product {
	return &domain.Product{
		ProductID:           productID,
		Name:                "Pallet of microcontrollers",
		Description:         "Batch 42",
		CurrentOwner:        suite.ownerID,
		CurrentStatus:       domain.StatusCreated,
		CurrentLocation:     "Warehouse 7",
		IsActive:            true,
		JournalEntriesCount: entryCount,
	}
}

// --- CreateProduct Tests ---

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		ProductID:    "PRD-001",
		Name:         "Pallet of microcontrollers",
		Description:  "Batch 42",
		InitialNotes: "Sealed at factory",
	}

	suite.mockProductRepo.On("CreateProductWithEntry", ctx,
		mock.MatchedBy(func(p domain.Product) bool {
			return p.ProductID == req.ProductID &&
				p.CurrentOwner == suite.ownerID &&
				p.CurrentStatus == domain.StatusCreated &&
				p.CurrentLocation == domain.OriginLocation &&
				p.IsActive &&
				p.JournalEntriesCount == 1
		}),
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.ProductID == req.ProductID &&
				e.EntryNumber == 0 &&
				e.Owner == suite.ownerID &&
				e.Title == domain.RegistrationTitle &&
				e.Message == req.InitialNotes &&
				e.Status == string(domain.StatusCreated) &&
				e.Location == domain.OriginLocation
		}),
	).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.Equal(uint64(1), product.JournalEntriesCount)
	suite.Equal(suite.ownerID, product.CurrentOwner)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Duplicate() {
	ctx := context.Background()
	req := dto.CreateProductRequest{ProductID: "PRD-001", Name: "Pallet"}

	suite.mockProductRepo.On("CreateProductWithEntry", ctx, mock.AnythingOfType("domain.Product"), mock.AnythingOfType("domain.JournalEntry")).
		Return(apperrors.ErrDuplicate).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_CapacityExceeded() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		ProductID: "PRD-001",
		Name:      strings.Repeat("x", domain.MaxProductNameLen+1),
	}

	product, err := suite.service.CreateProduct(ctx, req, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrCapacityExceeded)
	// Nothing may be written when a capacity check fails.
	suite.mockProductRepo.AssertNotCalled(suite.T(), "CreateProductWithEntry", mock.Anything, mock.Anything, mock.Anything)
}

// --- AddJournalEntry Tests ---

func (suite *ProductServiceTestSuite) TestAddJournalEntry_Success() {
	ctx := context.Background()
	productID := "PRD-001"
	req := dto.AddJournalEntryRequest{
		Title:       "Quality inspection",
		Message:     "Passed visual check",
		NewStatus:   "Inspected",
		NewLocation: "QA Bay 2",
	}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(suite.activeProduct(productID, 3), nil).Once()

	// Entry number equals the count observed at load time; the persisted count
	// advances by exactly one.
	suite.mockProductRepo.On("ApplyTransition", ctx,
		mock.MatchedBy(func(p domain.Product) bool {
			return p.JournalEntriesCount == 4 &&
				p.CurrentStatus == domain.ProductStatus("Inspected") &&
				p.CurrentLocation == "QA Bay 2"
		}),
		uint64(3),
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.EntryNumber == 3 &&
				e.Owner == suite.ownerID &&
				e.Title == req.Title &&
				e.Status == req.NewStatus &&
				e.Location == req.NewLocation
		}),
	).Return(nil).Once()

	entry, err := suite.service.AddJournalEntry(ctx, productID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(uint64(3), entry.EntryNumber)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestAddJournalEntry_InactiveProduct() {
	ctx := context.Background()
	productID := "PRD-001"

	product := suite.activeProduct(productID, 5)
	product.IsActive = false
	product.CurrentStatus = domain.StatusDeactivated

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()

	entry, err := suite.service.AddJournalEntry(ctx, productID, dto.AddJournalEntryRequest{
		Title: "Late note", NewStatus: "Stored", NewLocation: "Shelf",
	}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrProductInactive)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestAddJournalEntry_NotOwner() {
	ctx := context.Background()
	productID := "PRD-001"
	stranger := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(suite.activeProduct(productID, 2), nil).Once()

	entry, err := suite.service.AddJournalEntry(ctx, productID, dto.AddJournalEntryRequest{
		Title: "Attempted note", NewStatus: "Stored", NewLocation: "Shelf",
	}, stranger)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestAddJournalEntry_SequenceConflict() {
	ctx := context.Background()
	productID := "PRD-001"

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(suite.activeProduct(productID, 2), nil).Once()
	suite.mockProductRepo.On("ApplyTransition", ctx, mock.AnythingOfType("domain.Product"), uint64(2), mock.AnythingOfType("domain.JournalEntry")).
		Return(apperrors.ErrSequenceConflict).Once()

	entry, err := suite.service.AddJournalEntry(ctx, productID, dto.AddJournalEntryRequest{
		Title: "Raced note", NewStatus: "Stored", NewLocation: "Shelf",
	}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrSequenceConflict)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

// --- TransferProduct Tests ---

func (suite *ProductServiceTestSuite) TestTransferProduct_Success() {
	ctx := context.Background()
	productID := "PRD-001"
	newOwnerID := uuid.NewString()
	req := dto.TransferProductRequest{
		Title:       "Handed to carrier",
		Message:     "Truck 12",
		NewLocation: "In transit",
		NewOwnerID:  newOwnerID,
	}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(suite.activeProduct(productID, 1), nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, newOwnerID).
		Return(&domain.User{UserID: newOwnerID, Name: "Carrier"}, nil).Once()

	// The journal entry records the previous owner as the acting custodian.
	previousOwner := suite.ownerID
	suite.mockProductRepo.On("ApplyTransition", ctx,
		mock.MatchedBy(func(p domain.Product) bool {
			return p.CurrentOwner == newOwnerID &&
				p.CurrentStatus == domain.StatusTransferred &&
				p.CurrentLocation == req.NewLocation &&
				p.JournalEntriesCount == 2
		}),
		uint64(1),
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.EntryNumber == 1 &&
				e.Owner == previousOwner &&
				e.Status == string(domain.StatusTransferred) &&
				e.Location == req.NewLocation
		}),
	).Return(nil).Once()

	product, err := suite.service.TransferProduct(ctx, productID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.Equal(newOwnerID, product.CurrentOwner)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestTransferProduct_UnknownNewOwner() {
	ctx := context.Background()
	productID := "PRD-001"
	newOwnerID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(suite.activeProduct(productID, 1), nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, newOwnerID).
		Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.TransferProduct(ctx, productID, dto.TransferProductRequest{
		Title: "Handed to carrier", NewLocation: "In transit", NewOwnerID: newOwnerID,
	}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestTransferProduct_NotOwner_LeavesStateUnchanged() {
	ctx := context.Background()
	productID := "PRD-001"
	stranger := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(suite.activeProduct(productID, 1), nil).Once()

	product, err := suite.service.TransferProduct(ctx, productID, dto.TransferProductRequest{
		Title: "Theft attempt", NewLocation: "Elsewhere", NewOwnerID: uuid.NewString(),
	}, stranger)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	// No write reaches the repository, so no state change and no journal entry.
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

// --- MarkDelivered Tests ---

func (suite *ProductServiceTestSuite) TestMarkDelivered_Success_LocationUnchanged() {
	ctx := context.Background()
	productID := "PRD-001"
	req := dto.MarkDeliveredRequest{Title: "Product Delivered", Message: "Signed by recipient"}

	loaded := suite.activeProduct(productID, 2)
	loaded.CurrentLocation = "Customer dock"
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(loaded, nil).Once()

	suite.mockProductRepo.On("ApplyTransition", ctx,
		mock.MatchedBy(func(p domain.Product) bool {
			return p.CurrentStatus == domain.StatusDelivered &&
				p.CurrentLocation == "Customer dock" &&
				p.JournalEntriesCount == 3
		}),
		uint64(2),
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.EntryNumber == 2 &&
				e.Status == string(domain.StatusDelivered) &&
				e.Location == "Customer dock"
		}),
	).Return(nil).Once()

	product, err := suite.service.MarkDelivered(ctx, productID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.Equal(domain.StatusDelivered, product.CurrentStatus)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

// --- DeactivateProduct Tests ---

func (suite *ProductServiceTestSuite) TestDeactivateProduct_Success() {
	ctx := context.Background()
	productID := "PRD-001"
	req := dto.DeactivateProductRequest{Title: "Product Deactivated", Reason: "Damaged beyond repair"}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(suite.activeProduct(productID, 4), nil).Once()

	suite.mockProductRepo.On("ApplyTransition", ctx,
		mock.MatchedBy(func(p domain.Product) bool {
			return !p.IsActive &&
				p.CurrentStatus == domain.StatusDeactivated &&
				p.JournalEntriesCount == 5
		}),
		uint64(4),
		mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.EntryNumber == 4 &&
				e.Message == req.Reason &&
				e.Status == string(domain.StatusDeactivated)
		}),
	).Return(nil).Once()

	product, err := suite.service.DeactivateProduct(ctx, productID, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.False(product.IsActive)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeactivateProduct_AlreadyInactive() {
	ctx := context.Background()
	productID := "PRD-001"

	product := suite.activeProduct(productID, 5)
	product.IsActive = false

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()

	result, err := suite.service.DeactivateProduct(ctx, productID, dto.DeactivateProductRequest{Title: "Again"}, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(result)
	// Deactivation is terminal, so a second attempt fails like any other mutation.
	suite.ErrorIs(err, apperrors.ErrProductInactive)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Lifecycle Scenario ---

// TestLifecycle_CreateTransferDeliver walks a product through registration,
// a custody transfer and delivery, asserting the journal numbering stays
// gapless: entries 0, 1, 2 and a final count of 3.
func (suite *ProductServiceTestSuite) TestLifecycle_CreateTransferDeliver() {
	ctx := context.Background()
	productID := "PRD-100"
	carrierID := uuid.NewString()

	// Registration writes entry 0.
	suite.mockProductRepo.On("CreateProductWithEntry", ctx,
		mock.MatchedBy(func(p domain.Product) bool { return p.JournalEntriesCount == 1 }),
		mock.MatchedBy(func(e domain.JournalEntry) bool { return e.EntryNumber == 0 }),
	).Return(nil).Once()

	created, err := suite.service.CreateProduct(ctx, dto.CreateProductRequest{
		ProductID: productID, Name: "Crate of sensors", InitialNotes: "Sealed",
	}, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), created.JournalEntriesCount)

	// Transfer writes entry 1 and hands custody to the carrier.
	afterCreate := suite.activeProduct(productID, 1)
	afterCreate.CurrentLocation = domain.OriginLocation
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(afterCreate, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, carrierID).
		Return(&domain.User{UserID: carrierID}, nil).Once()
	suite.mockProductRepo.On("ApplyTransition", ctx,
		mock.MatchedBy(func(p domain.Product) bool { return p.JournalEntriesCount == 2 && p.CurrentOwner == carrierID }),
		uint64(1),
		mock.MatchedBy(func(e domain.JournalEntry) bool { return e.EntryNumber == 1 }),
	).Return(nil).Once()

	transferred, err := suite.service.TransferProduct(ctx, productID, dto.TransferProductRequest{
		Title: "Dispatched", NewLocation: "In transit", NewOwnerID: carrierID,
	}, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal(uint64(2), transferred.JournalEntriesCount)

	// Delivery by the carrier writes entry 2.
	afterTransfer := suite.activeProduct(productID, 2)
	afterTransfer.CurrentOwner = carrierID
	afterTransfer.CurrentStatus = domain.StatusTransferred
	afterTransfer.CurrentLocation = "In transit"
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(afterTransfer, nil).Once()
	suite.mockProductRepo.On("ApplyTransition", ctx,
		mock.MatchedBy(func(p domain.Product) bool { return p.JournalEntriesCount == 3 && p.CurrentStatus == domain.StatusDelivered }),
		uint64(2),
		mock.MatchedBy(func(e domain.JournalEntry) bool { return e.EntryNumber == 2 }),
	).Return(nil).Once()

	delivered, err := suite.service.MarkDelivered(ctx, productID, dto.MarkDeliveredRequest{Title: "Product Delivered"}, carrierID)
	suite.Require().NoError(err)
	suite.Equal(uint64(3), delivered.JournalEntriesCount)

	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ListProducts Tests ---

func (suite *ProductServiceTestSuite) TestListProducts_Success() {
	ctx := context.Background()
	token := "cursor"
	products := []domain.Product{
		*suite.activeProduct("PRD-002", 1),
		*suite.activeProduct("PRD-001", 3),
	}

	suite.mockProductRepo.On("ListProducts", ctx, 20, (*string)(nil)).
		Return(products, &token, nil).Once()

	resp, err := suite.service.ListProducts(ctx, dto.ListProductsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Products, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
