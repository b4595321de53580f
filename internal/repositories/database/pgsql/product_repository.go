package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	portsrepo "github.com/TraceKeep/custody_ledger_app/internal/core/ports/repositories"
	"github.com/TraceKeep/custody_ledger_app/internal/models"
	"github.com/TraceKeep/custody_ledger_app/internal/utils/mapping"
	"github.com/TraceKeep/custody_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product records.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const insertEntryQuery = `
	INSERT INTO journal_entries (
		product_id, entry_number, owner, event_timestamp, title, message, status, location,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

// CreateProductWithEntry inserts the product together with its entry-0 journal
// record inside one DB transaction. The products primary key is the address
// derived from the product ID, so a second create with the same ID fails here
// with ErrDuplicate and leaves the first record untouched.
func (r *PgxProductRepository) CreateProductWithEntry(ctx context.Context, product domain.Product, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	modelProduct := mapping.ToModelProduct(product)
	productQuery := `
		INSERT INTO products (
			product_id, name, description, current_owner, current_status, current_location,
			product_created_at, is_active, journal_entries_count,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, productQuery,
		modelProduct.ProductID,
		modelProduct.Name,
		modelProduct.Description,
		modelProduct.CurrentOwner,
		modelProduct.CurrentStatus,
		modelProduct.CurrentLocation,
		modelProduct.CreatedAt,
		modelProduct.IsActive,
		modelProduct.JournalEntriesCount,
		modelProduct.AuditFields.CreatedAt,
		modelProduct.AuditFields.CreatedBy,
		modelProduct.AuditFields.LastUpdatedAt,
		modelProduct.AuditFields.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert product "+modelProduct.ProductID, err)
	}

	if err := r.insertEntry(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, name, description, current_owner, current_status, current_location,
		       product_created_at, is_active, journal_entries_count,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products
		WHERE product_id = $1;
	`
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&m.ProductID,
		&m.Name,
		&m.Description,
		&m.CurrentOwner,
		&m.CurrentStatus,
		&m.CurrentLocation,
		&m.CreatedAt,
		&m.IsActive,
		&m.JournalEntriesCount,
		&m.AuditFields.CreatedAt,
		&m.AuditFields.CreatedBy,
		&m.AuditFields.LastUpdatedAt,
		&m.AuditFields.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}

	domainProduct := mapping.ToDomainProduct(m)
	return &domainProduct, nil
}

// ListProducts retrieves a paginated list of products using token-based pagination,
// newest first.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT product_id, name, description, current_owner, current_status, current_location,
		       product_created_at, is_active, journal_entries_count,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products
	`
	orderByClause := `ORDER BY created_at DESC, product_id DESC`

	var rows pgx.Rows
	var err error

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastProductID, decodeErr := pagination.DecodeDateIDBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Row-value comparison matches the full sort key, so rows sharing a
		// created_at timestamp at a page boundary are not skipped.
		query := baseQuery + " WHERE (created_at, product_id) < ($1, $2) " + orderByClause + " LIMIT $3;"
		rows, err = r.Pool.Query(ctx, query, lastCreatedAt, lastProductID, fetchLimit)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	modelProducts := make([]models.Product, 0, fetchLimit)
	for rows.Next() {
		var m models.Product
		scanErr := rows.Scan(
			&m.ProductID,
			&m.Name,
			&m.Description,
			&m.CurrentOwner,
			&m.CurrentStatus,
			&m.CurrentLocation,
			&m.CreatedAt,
			&m.IsActive,
			&m.JournalEntriesCount,
			&m.AuditFields.CreatedAt,
			&m.AuditFields.CreatedBy,
			&m.AuditFields.LastUpdatedAt,
			&m.AuditFields.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan product row", scanErr)
		}
		modelProducts = append(modelProducts, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	var nextTokenVal *string
	results := modelProducts
	if len(modelProducts) > limit {
		lastProduct := modelProducts[limit-1]
		token := pagination.EncodeDateIDBasedToken(lastProduct.AuditFields.CreatedAt, lastProduct.ProductID)
		nextTokenVal = &token
		results = modelProducts[:limit]
	}

	return mapping.ToDomainProductSlice(results), nextTokenVal, nil
}

// ApplyTransition persists an already-mutated product and appends its journal
// entry atomically. The optimistic predicate on journal_entries_count makes
// conflicting writers serialize: whichever transaction commits first wins, the
// loser matches zero rows and gets ErrSequenceConflict with nothing written.
// The (product_id, entry_number) primary key backstops the same guarantee.
func (r *PgxProductRepository) ApplyTransition(ctx context.Context, product domain.Product, expectedCount uint64, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelProduct := mapping.ToModelProduct(product)
	updateQuery := `
		UPDATE products
		SET current_owner = $2,
		    current_status = $3,
		    current_location = $4,
		    is_active = $5,
		    journal_entries_count = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE product_id = $1 AND journal_entries_count = $9;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		modelProduct.ProductID,
		modelProduct.CurrentOwner,
		modelProduct.CurrentStatus,
		modelProduct.CurrentLocation,
		modelProduct.IsActive,
		modelProduct.JournalEntriesCount,
		modelProduct.AuditFields.LastUpdatedAt,
		modelProduct.AuditFields.LastUpdatedBy,
		expectedCount,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product "+modelProduct.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either a concurrent writer advanced the counter or the product is
		// gone; the caller loaded the product in this operation, so the
		// counter race is the case that matters.
		return apperrors.ErrSequenceConflict
	}

	if err := r.insertEntry(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertEntry appends one journal entry within the given transaction.
func (r *PgxProductRepository) insertEntry(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	modelEntry := mapping.ToModelJournalEntry(entry)
	_, err := tx.Exec(ctx, insertEntryQuery,
		modelEntry.ProductID,
		modelEntry.EntryNumber,
		modelEntry.Owner,
		modelEntry.Timestamp,
		modelEntry.Title,
		modelEntry.Message,
		modelEntry.Status,
		modelEntry.Location,
		modelEntry.AuditFields.CreatedAt,
		modelEntry.AuditFields.CreatedBy,
		modelEntry.AuditFields.LastUpdatedAt,
		modelEntry.AuditFields.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrSequenceConflict
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+strconv.FormatUint(modelEntry.EntryNumber, 10)+" for product "+modelEntry.ProductID, err)
	}
	return nil
}
