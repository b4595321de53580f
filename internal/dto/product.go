package dto

import (
	"time"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
)

// CreateProductRequest defines the payload for registering a new product.
// Max lengths mirror the reserved column capacities.
type CreateProductRequest struct {
	ProductID    string `json:"productID" binding:"required,max=50,product_id"`
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description" binding:"max=500"`
	InitialNotes string `json:"initialNotes" binding:"max=1000"`
}

// AddJournalEntryRequest defines the payload for appending a plain journal entry.
// NewStatus is a free-form label; lifecycle operations use their own endpoints.
type AddJournalEntryRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Message     string `json:"message" binding:"max=1000"`
	NewStatus   string `json:"newStatus" binding:"required,max=50"`
	NewLocation string `json:"newLocation" binding:"required,max=50"`
}

// TransferProductRequest defines the payload for transferring custody.
type TransferProductRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Message     string `json:"message" binding:"max=1000"`
	NewLocation string `json:"newLocation" binding:"required,max=50"`
	NewOwnerID  string `json:"newOwnerID" binding:"required"`
}

// MarkDeliveredRequest defines the payload for marking a product delivered.
type MarkDeliveredRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Message string `json:"message" binding:"max=1000"`
}

// DeactivateProductRequest defines the payload for deactivating a product.
type DeactivateProductRequest struct {
	Title  string `json:"title" binding:"required,max=100"`
	Reason string `json:"reason" binding:"max=1000"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID           string    `json:"productID"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	CurrentOwner        string    `json:"currentOwner"`
	CurrentStatus       string    `json:"currentStatus"`
	CurrentLocation     string    `json:"currentLocation"`
	CreatedAt           time.Time `json:"createdAt"`
	IsActive            bool      `json:"isActive"`
	JournalEntriesCount uint64    `json:"journalEntriesCount"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListProductsResponse wraps a page of products with the pagination cursor.
type ListProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:           p.ProductID,
		Name:                p.Name,
		Description:         p.Description,
		CurrentOwner:        p.CurrentOwner,
		CurrentStatus:       string(p.CurrentStatus),
		CurrentLocation:     p.CurrentLocation,
		CreatedAt:           p.CreatedAt,
		IsActive:            p.IsActive,
		JournalEntriesCount: p.JournalEntriesCount,
	}
}

// ToProductResponses converts a slice of domain.Product to []ProductResponse.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(&p)
	}
	return responses
}
