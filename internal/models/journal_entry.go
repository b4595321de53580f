package models

import "time"

// JournalEntry represents a row of the journal_entries table. The composite
// primary key (product_id, entry_number) is the entry's derived address:
// two writers racing for the same sequence number conflict on it and exactly
// one insert succeeds.
type JournalEntry struct {
	ProductID   string    `db:"product_id"`
	EntryNumber uint64    `db:"entry_number"`
	Owner       string    `db:"owner"`
	Timestamp   time.Time `db:"event_timestamp"`
	Title       string    `db:"title"`
	Message     string    `db:"message"`
	Status      string    `db:"status"`
	Location    string    `db:"location"`
	AuditFields
}
