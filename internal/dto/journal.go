package dto

import (
	"time"

	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
)

// JournalEntryResponse defines the data returned for one journal entry.
type JournalEntryResponse struct {
	ProductID   string    `json:"productID"`
	EntryNumber uint64    `json:"entryNumber"`
	Owner       string    `json:"owner"`
	Timestamp   time.Time `json:"timestamp"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
}

// ListJournalEntriesParams defines query parameters for listing a product's history.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of journal entries with the cursor.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ProductID:   e.ProductID,
		EntryNumber: e.EntryNumber,
		Owner:       e.Owner,
		Timestamp:   e.Timestamp,
		Title:       e.Title,
		Message:     e.Message,
		Status:      e.Status,
		Location:    e.Location,
	}
}

// ToJournalEntryResponses converts a slice of domain entries to response DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return responses
}
