package models

import "time"

// ProductStatus mirrors domain.ProductStatus at the persistence layer.
type ProductStatus string

const (
	Created     ProductStatus = "Created"
	Transferred ProductStatus = "Transferred"
	Delivered   ProductStatus = "Delivered"
	Deactivated ProductStatus = "Deactivated"
)

// Product represents a row of the products table. String columns are
// VARCHAR(n) with the reserved capacities, so the database also rejects
// oversized writes instead of truncating.
type Product struct {
	ProductID           string        `db:"product_id"`
	Name                string        `db:"name"`
	Description         string        `db:"description"`
	CurrentOwner        string        `db:"current_owner"`
	CurrentStatus       ProductStatus `db:"current_status"`
	CurrentLocation     string        `db:"current_location"`
	CreatedAt           time.Time     `db:"product_created_at"`
	IsActive            bool          `db:"is_active"`
	JournalEntriesCount uint64        `db:"journal_entries_count"`
	AuditFields
}
