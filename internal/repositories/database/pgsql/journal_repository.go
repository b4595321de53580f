package pgsql

import (
	"context"
	"errors"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	portsrepo "github.com/TraceKeep/custody_ledger_app/internal/core/ports/repositories"
	"github.com/TraceKeep/custody_ledger_app/internal/models"
	"github.com/TraceKeep/custody_ledger_app/internal/utils/mapping"
	"github.com/TraceKeep/custody_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new read-side repository for journal entries.
// All writes go through the product repository so they stay atomic with the
// owning product row.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const selectEntryColumns = `
	SELECT product_id, entry_number, owner, event_timestamp, title, message, status, location,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM journal_entries
`

// FindEntryByNumber loads a single entry by its (product_id, entry_number) address.
func (r *PgxJournalRepository) FindEntryByNumber(ctx context.Context, productID string, entryNumber uint64) (*domain.JournalEntry, error) {
	query := selectEntryColumns + " WHERE product_id = $1 AND entry_number = $2;"

	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, productID, entryNumber).Scan(
		&m.ProductID,
		&m.EntryNumber,
		&m.Owner,
		&m.Timestamp,
		&m.Title,
		&m.Message,
		&m.Status,
		&m.Location,
		&m.AuditFields.CreatedAt,
		&m.AuditFields.CreatedBy,
		&m.AuditFields.LastUpdatedAt,
		&m.AuditFields.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry for product "+productID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(m)
	return &domainEntry, nil
}

// ListEntriesByProduct retrieves a page of a product's journal ordered by entry
// number ascending, using token-based pagination.
func (r *PgxJournalRepository) ListEntriesByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error

	if nextToken != nil && *nextToken != "" {
		lastEntryNumber, decodeErr := pagination.DecodeEntryNumberToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query := selectEntryColumns + " WHERE product_id = $1 AND entry_number > $2 ORDER BY entry_number ASC LIMIT $3;"
		rows, err = r.Pool.Query(ctx, query, productID, lastEntryNumber, fetchLimit)
	} else {
		query := selectEntryColumns + " WHERE product_id = $1 ORDER BY entry_number ASC LIMIT $2;"
		rows, err = r.Pool.Query(ctx, query, productID, fetchLimit)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries for product "+productID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.JournalEntry
		scanErr := rows.Scan(
			&m.ProductID,
			&m.EntryNumber,
			&m.Owner,
			&m.Timestamp,
			&m.Title,
			&m.Message,
			&m.Status,
			&m.Location,
			&m.AuditFields.CreatedAt,
			&m.AuditFields.CreatedBy,
			&m.AuditFields.LastUpdatedAt,
			&m.AuditFields.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", scanErr)
		}
		modelEntries = append(modelEntries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		lastEntry := modelEntries[limit-1]
		token := pagination.EncodeEntryNumberToken(lastEntry.EntryNumber)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainJournalEntrySlice(results), nextTokenVal, nil
}
