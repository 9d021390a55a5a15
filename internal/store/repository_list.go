package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
	"github.com/jackc/pgerrcode"
)

// listRepository is the PostgreSQL-backed implementation of [ListRepository].
//
// Besides plain CRUD it carries the two operations every other subsystem
// leans on: FindOwnedList (the ownership-chain resolution) and
// DeleteListsByOwner (a step of the account cascade).
type listRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListRepository constructs a [ListRepository] backed by the provided
// database connection and logger.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		db:     db,
		logger: logger,
	}
}

// CreateList persists a new list and returns the record with server-assigned
// fields.
//
// Error handling:
//   - unique_violation on share_id → [ErrShareIDTaken] (caller regenerates).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *listRepository) CreateList(ctx context.Context, list models.List) (models.List, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createList, list.OwnerID, list.Title, list.IsPublic, list.ShareID)

	var created models.List
	if err := scanList(row, &created); err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Int64("owner_id", list.OwnerID).Msg("error: scanning created list")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.List{}, ErrShareIDTaken
		}

		return models.List{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindListsByOwner returns every list owned by the user, newest first.
// Returns an empty slice when the user owns nothing.
func (r *listRepository) FindListsByOwner(ctx context.Context, ownerID int64) ([]models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListsByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.FindListsByOwner").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.FindListsByOwner").Int64("owner_id", ownerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.List, 0, 8)
	for rows.Next() {
		var list models.List
		if err := scanList(rows, &list); err != nil {
			log.Err(err).Str("func", "*listRepository.FindListsByOwner").Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, list)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*listRepository.FindListsByOwner").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// FindOwnedList resolves the list only when listID belongs to ownerID.
//
// Every authenticated item and list mutation authorizes through this lookup,
// so "absent" and "owned by someone else" both surface as [ErrListNotFound]
// and leak nothing about other users' data.
func (r *listRepository) FindOwnedList(ctx context.Context, listID, ownerID int64) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnedListQuery(listID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.FindOwnedList").Msg("failed to build query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.List
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanList(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrListNotFound
		}
		log.Err(err).Str("func", "*listRepository.FindOwnedList").Int64("list_id", listID).Int64("owner_id", ownerID).Msg("error: scanning found list")
		return models.List{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindListByID retrieves a list regardless of owner. Used on anonymous paths
// (claim creation) where the public flag, not ownership, gates access.
func (r *listRepository) FindListByID(ctx context.Context, listID int64) (models.List, error) {
	return r.findOneList(ctx, "list_id", listID)
}

// FindListByShareID retrieves a list by its public share identifier.
func (r *listRepository) FindListByShareID(ctx context.Context, shareID string) (models.List, error) {
	return r.findOneList(ctx, "share_id", shareID)
}

func (r *listRepository) findOneList(ctx context.Context, column string, value any) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.findOneList").Msg("failed to build query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.List
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanList(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrListNotFound
		}
		log.Err(err).Str("func", "*listRepository.findOneList").Str("column", column).Msg("error: scanning found list")
		return models.List{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateList applies a partial mutation to an owned list. The owner predicate
// is part of the statement, so updating someone else's list affects zero rows
// and surfaces as [ErrListNotFound].
func (r *listRepository) UpdateList(ctx context.Context, listID, ownerID int64, update models.UpdateListRequest) (models.List, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateListQuery(listID, ownerID, update)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UpdateList").Msg("failed to build update query")
		return models.List{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.List
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanList(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrListNotFound
		}
		log.Err(err).Str("func", "*listRepository.UpdateList").Int64("list_id", listID).Msg("error: scanning updated list")
		return models.List{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteList removes a single list row. Items and claims must already be
// gone; the cascade orchestrator guarantees ordering. Re-running the delete
// is harmless.
func (r *listRepository) DeleteList(ctx context.Context, listID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.execIdempotent(ctx, deleteList, listID); err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Int64("list_id", listID).Msg("failed to delete list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteListsByOwner removes every list owned by the user and reports how
// many rows went away. A second pass deletes nothing and returns zero.
func (r *listRepository) DeleteListsByOwner(ctx context.Context, ownerID int64) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.execIdempotent(ctx, deleteListsByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteListsByOwner").Int64("owner_id", ownerID).Msg("failed to delete lists")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func scanList(row scanner, list *models.List) error {
	return row.Scan(
		&list.ListID,
		&list.OwnerID,
		&list.Title,
		&list.IsPublic,
		&list.ShareID,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
}
