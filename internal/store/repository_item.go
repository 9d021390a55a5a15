package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item and returns the record with server-assigned
// fields. Ownership of the parent list is the caller's responsibility.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem,
		item.ListID, item.Title, item.URL, item.PriceCents,
		item.ImageURL, item.Category, item.Priority, item.Notes,
	)

	var created models.Item
	if err := scanItem(row, &created); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Int64("list_id", item.ListID).Msg("error: scanning created item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindItemByID retrieves a single item. Returns [ErrItemNotFound] when no row
// matches.
func (r *itemRepository) FindItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery("item_id", itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("failed to build query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Item
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanItem(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Int64("item_id", itemID).Msg("error: scanning found item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindItemsByListID returns every item of one list, in insertion order.
func (r *itemRepository) FindItemsByListID(ctx context.Context, listID int64) ([]models.Item, error) {
	return r.findItems(ctx, "list_id", listID)
}

// FindItemsByListIDs returns the items of all given lists in one query.
// An empty input yields an empty result without touching the database.
func (r *itemRepository) FindItemsByListIDs(ctx context.Context, listIDs []int64) ([]models.Item, error) {
	if len(listIDs) == 0 {
		return []models.Item{}, nil
	}
	return r.findItems(ctx, "list_id", listIDs)
}

func (r *itemRepository) findItems(ctx context.Context, column string, value any) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.findItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.findItems").Str("column", column).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Item, 0, 16)
	for rows.Next() {
		var item models.Item
		if err := scanItem(rows, &item); err != nil {
			log.Err(err).Str("func", "*itemRepository.findItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.findItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// UpdateItem applies a partial mutation and returns the updated record.
// Returns [ErrItemNotFound] when no row matches.
func (r *itemRepository) UpdateItem(ctx context.Context, itemID int64, update models.UpdateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(itemID, update)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("failed to build update query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Item
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanItem(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("item_id", itemID).Msg("error: scanning updated item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteItem removes a single item row. The claim on the item, if any, must
// already be gone. Re-running the delete is harmless.
func (r *itemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.execIdempotent(ctx, deleteItem, itemID); err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", itemID).Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteItemsByListIDs removes every item of the given lists and reports how
// many rows went away. An empty input is a no-op.
func (r *itemRepository) DeleteItemsByListIDs(ctx context.Context, listIDs []int64) (int64, error) {
	if len(listIDs) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemsByListIDsQuery(listIDs)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItemsByListIDs").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.execIdempotent(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItemsByListIDs").Msg("failed to delete items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func scanItem(row scanner, item *models.Item) error {
	return row.Scan(
		&item.ItemID,
		&item.ListID,
		&item.Title,
		&item.URL,
		&item.PriceCents,
		&item.ImageURL,
		&item.Category,
		&item.Priority,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
