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

// Unique indexes on the claims table. Two indexes share the error code 23505,
// so constraint names are the only way to tell "item already claimed" apart
// from "generated token collided".
const (
	claimItemConstraint  = "claims_item_id_key"
	claimTokenConstraint = "claims_secret_token_key"
)

// claimRepository is the PostgreSQL-backed implementation of [ClaimRepository].
type claimRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClaimRepository constructs a [ClaimRepository] backed by the provided
// database connection and logger.
func NewClaimRepository(db *DB, logger *logger.Logger) ClaimRepository {
	logger.Debug().Msg("creating claim repository")
	return &claimRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClaim inserts a claim with insert-if-absent semantics. The unique
// index on item_id is the sole arbiter of "who claimed first": there is no
// prior existence check, so two racing claimers resolve at the database and
// exactly one wins.
//
// Error handling:
//   - unique_violation on item_id → [ErrItemAlreadyClaimed].
//   - unique_violation on secret_token → [ErrTokenCollision] (caller
//     regenerates the token and retries).
func (r *claimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createClaim,
		claim.ItemID, claim.ClaimerName, claim.ClaimerNote, claim.SecretToken,
	)

	var created models.Claim
	if err := scanClaim(row, &created); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case claimItemConstraint:
				return models.Claim{}, ErrItemAlreadyClaimed
			case claimTokenConstraint:
				return models.Claim{}, ErrTokenCollision
			}
		}

		log.Err(err).Str("func", "*claimRepository.CreateClaim").Int64("item_id", claim.ItemID).Msg("error: scanning created claim")
		return models.Claim{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindClaimByID retrieves a single claim, secret token included. The token
// never leaves the service layer except inside the creation response.
//
// Returns [ErrClaimNotFound] when no row matches.
func (r *claimRepository) FindClaimByID(ctx context.Context, claimID int64) (models.Claim, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClaimByIDQuery(claimID)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.FindClaimByID").Msg("failed to build query")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Claim
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanClaim(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Claim{}, ErrClaimNotFound
		}
		log.Err(err).Str("func", "*claimRepository.FindClaimByID").Int64("claim_id", claimID).Msg("error: scanning found claim")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindClaimsByItemIDs returns the claims referencing any of the given items.
// An empty input yields an empty result without touching the database.
func (r *claimRepository) FindClaimsByItemIDs(ctx context.Context, itemIDs []int64) ([]models.Claim, error) {
	if len(itemIDs) == 0 {
		return []models.Claim{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildSelectClaimsByItemIDsQuery(itemIDs)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.FindClaimsByItemIDs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.FindClaimsByItemIDs").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Claim, 0, len(itemIDs))
	for rows.Next() {
		var claim models.Claim
		if err := scanClaim(rows, &claim); err != nil {
			log.Err(err).Str("func", "*claimRepository.FindClaimsByItemIDs").Msg("failed to scan claim row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, claim)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*claimRepository.FindClaimsByItemIDs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// DeleteClaim removes a single claim. Deleting an absent claim yields
// [ErrClaimNotFound] so retraction can tell "gone" apart from "done".
func (r *claimRepository) DeleteClaim(ctx context.Context, claimID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.execIdempotent(ctx, deleteClaim, claimID)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.DeleteClaim").Int64("claim_id", claimID).Msg("failed to delete claim")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if deleted == 0 {
		return ErrClaimNotFound
	}

	return nil
}

// DeleteClaimsByItemIDs removes every claim referencing the given items and
// reports how many rows went away. An empty input is a no-op.
func (r *claimRepository) DeleteClaimsByItemIDs(ctx context.Context, itemIDs []int64) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildDeleteClaimsByItemIDsQuery(itemIDs)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.DeleteClaimsByItemIDs").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.execIdempotent(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.DeleteClaimsByItemIDs").Msg("failed to delete claims")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func scanClaim(row scanner, claim *models.Claim) error {
	return row.Scan(
		&claim.ClaimID,
		&claim.ItemID,
		&claim.ClaimerName,
		&claim.ClaimerNote,
		&claim.SecretToken,
		&claim.ClaimedAt,
	)
}
