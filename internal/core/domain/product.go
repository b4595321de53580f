package domain

import (
	"fmt"
	"time"
)

// ProductStatus labels the lifecycle state of a tracked product.
// The four constants below are the only values the transition operations
// ever write; plain journal entries may carry a free-form caller label.
type ProductStatus string

const (
	StatusCreated     ProductStatus = "Created"
	StatusTransferred ProductStatus = "Transferred"
	StatusDelivered   ProductStatus = "Delivered"
	StatusDeactivated ProductStatus = "Deactivated"
)

// OriginLocation is the location stamped on every product at creation.
const OriginLocation = "Origin"

// RegistrationTitle is the title of the creation journal entry (entry 0).
const RegistrationTitle = "Product Registration"

// Reserved capacities for product string fields, in bytes. Storage reserves
// these up front; any write exceeding them must fail rather than truncate.
const (
	MaxProductIDLen   = 50
	MaxProductNameLen = 100
	MaxDescriptionLen = 500
	MaxLocationLen    = 50
	MaxStatusLen      = 100
)

// Product is the current-state record of a tracked item. Its JournalEntriesCount
// doubles as the next journal entry's sequence number, which makes it the
// per-product monotonic address allocator for the journal.
type Product struct {
	ProductID           string        `json:"productID"` // Externally chosen, immutable
	Name                string        `json:"name"`
	Description         string        `json:"description"`
	CurrentOwner        string        `json:"currentOwner"` // UserID of the custodian
	CurrentStatus       ProductStatus `json:"currentStatus"`
	CurrentLocation     string        `json:"currentLocation"`
	CreatedAt           time.Time     `json:"createdAt"`
	IsActive            bool          `json:"isActive"`
	JournalEntriesCount uint64        `json:"journalEntriesCount"`
	AuditFields
}

// NextEntryNumber returns the sequence number the next journal entry must take.
// Entry numbers are contiguous from 0, so the current count is the next number.
func (p *Product) NextEntryNumber() uint64 {
	return p.JournalEntriesCount
}

// ValidateCapacities checks every string field against its reserved capacity.
func (p *Product) ValidateCapacities() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"product_id", p.ProductID, MaxProductIDLen},
		{"name", p.Name, MaxProductNameLen},
		{"description", p.Description, MaxDescriptionLen},
		{"current_location", p.CurrentLocation, MaxLocationLen},
		{"current_status", string(p.CurrentStatus), MaxStatusLen},
	}
	for _, c := range checks {
		if err := CheckCapacity(c.field, c.value, c.max); err != nil {
			return err
		}
	}
	return nil
}

// CheckCapacity validates a single field value against its reserved byte capacity.
func CheckCapacity(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("field %s is %d bytes, capacity is %d", field, len(value), max)
	}
	return nil
}
