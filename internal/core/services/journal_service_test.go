package services_test

import (
	"context"
	"testing"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/core/services"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByNumber(ctx context.Context, productID string, entryNumber uint64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, productID, entryNumber)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, productID, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockProductRepo *MockProductRepository
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockProductRepo)
}

func (suite *JournalServiceTestSuite) TestGetEntry_Success() {
	ctx := context.Background()
	productID := "PRD-001"
	expected := &domain.JournalEntry{ProductID: productID, EntryNumber: 2, Title: "Quality inspection"}

	suite.mockJournalRepo.On("FindEntryByNumber", ctx, productID, uint64(2)).Return(expected, nil).Once()

	entry, err := suite.service.GetEntry(ctx, productID, 2)

	suite.Require().NoError(err)
	suite.Equal(expected, entry)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetEntry_NotFound() {
	ctx := context.Background()
	productID := "PRD-001"

	suite.mockJournalRepo.On("FindEntryByNumber", ctx, productID, uint64(99)).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntry(ctx, productID, 99)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	productID := "PRD-001"
	entries := []domain.JournalEntry{
		{ProductID: productID, EntryNumber: 0, Title: domain.RegistrationTitle},
		{ProductID: productID, EntryNumber: 1, Title: "Dispatched"},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(&domain.Product{ProductID: productID, JournalEntriesCount: 2}, nil).Once()
	suite.mockJournalRepo.On("ListEntriesByProduct", ctx, productID, 20, (*string)(nil)).
		Return(entries, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, productID, dto.ListJournalEntriesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Entries, 2)
	suite.Equal(uint64(0), resp.Entries[0].EntryNumber)
	suite.Equal(uint64(1), resp.Entries[1].EntryNumber)
	suite.Nil(resp.NextToken)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_ProductNotFound() {
	ctx := context.Background()
	productID := "PRD-MISSING"

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ListEntries(ctx, productID, dto.ListJournalEntriesParams{})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ListEntriesByProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListEntries_DefaultsLimit() {
	ctx := context.Background()
	productID := "PRD-001"

	suite.mockProductRepo.On("FindProductByID", ctx, productID).
		Return(&domain.Product{ProductID: productID}, nil).Once()
	suite.mockJournalRepo.On("ListEntriesByProduct", ctx, productID, 20, (*string)(nil)).
		Return([]domain.JournalEntry{}, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, productID, dto.ListJournalEntriesParams{Limit: 0})

	suite.Require().NoError(err)
	suite.Empty(resp.Entries)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
