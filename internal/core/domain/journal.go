package domain

import "time"

// Reserved capacities for journal entry string fields, in bytes.
const (
	MaxEntryTitleLen    = 100
	MaxEntryMessageLen  = 1000
	MaxEntryStatusLen   = 50
	MaxEntryLocationLen = 100
)

// JournalEntry is one immutable historical event in a product's custody history.
// Entries are append-only: once written they are never mutated or deleted.
// ProductID is a plain foreign key, not an ownership link.
type JournalEntry struct {
	ProductID   string    `json:"productID"`
	EntryNumber uint64    `json:"entryNumber"` // Contiguous from 0, no gaps, no duplicates
	Owner       string    `json:"owner"`       // Custodian at the time of the event
	Timestamp   time.Time `json:"timestamp"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`   // Product status snapshot after this event
	Location    string    `json:"location"` // Product location snapshot after this event
	AuditFields
}

// ValidateCapacities checks every string field against its reserved capacity.
func (e *JournalEntry) ValidateCapacities() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"title", e.Title, MaxEntryTitleLen},
		{"message", e.Message, MaxEntryMessageLen},
		{"status", e.Status, MaxEntryStatusLen},
		{"location", e.Location, MaxEntryLocationLen},
	}
	for _, c := range checks {
		if err := CheckCapacity(c.field, c.value, c.max); err != nil {
			return err
		}
	}
	return nil
}
