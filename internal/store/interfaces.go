package store

import (
	"context"

	"github.com/MKhiriev/wishkeeper/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	// CreateUser inserts a new account. A unique-index collision on email is
	// reported as [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser persists name and preference changes and bumps updated_at.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// TouchLastActive bumps last_active_at for the given user.
	TouchLastActive(ctx context.Context, userID int64) error

	// DeleteUser removes the account row. Descendant rows must already be
	// gone; the cascade orchestrator guarantees ordering.
	DeleteUser(ctx context.Context, userID int64) error
}

// ListRepository is the data-access layer for wishlists.
type ListRepository interface {
	// CreateList inserts a new list. A unique-index collision on share_id is
	// reported as [ErrShareIDTaken] so the caller can regenerate and retry.
	CreateList(ctx context.Context, list models.List) (models.List, error)

	FindListsByOwner(ctx context.Context, ownerID int64) ([]models.List, error)

	// FindOwnedList resolves the list only when it belongs to ownerID.
	// This is the single named operation behind all ownership-chain
	// authorization: a list owned by someone else yields [ErrListNotFound],
	// indistinguishable from an absent list.
	FindOwnedList(ctx context.Context, listID, ownerID int64) (models.List, error)

	FindListByID(ctx context.Context, listID int64) (models.List, error)
	FindListByShareID(ctx context.Context, shareID string) (models.List, error)

	// UpdateList applies a partial mutation to an owned list and bumps
	// updated_at. Returns [ErrListNotFound] when the list is absent or owned
	// by another user.
	UpdateList(ctx context.Context, listID, ownerID int64, update models.UpdateListRequest) (models.List, error)

	DeleteList(ctx context.Context, listID int64) error

	// DeleteListsByOwner removes every list owned by the user and returns the
	// number of rows deleted. Safe to re-run; a second pass deletes nothing.
	DeleteListsByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// ItemRepository is the data-access layer for wishlist items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	FindItemByID(ctx context.Context, itemID int64) (models.Item, error)
	FindItemsByListID(ctx context.Context, listID int64) ([]models.Item, error)

	// FindItemsByListIDs returns the items of all given lists in one query.
	// An empty input yields an empty result without touching the database.
	FindItemsByListIDs(ctx context.Context, listIDs []int64) ([]models.Item, error)

	// UpdateItem applies a partial mutation and bumps updated_at.
	UpdateItem(ctx context.Context, itemID int64, update models.UpdateItemRequest) (models.Item, error)

	DeleteItem(ctx context.Context, itemID int64) error

	// DeleteItemsByListIDs removes every item of the given lists and returns
	// the number of rows deleted. Safe to re-run.
	DeleteItemsByListIDs(ctx context.Context, listIDs []int64) (int64, error)
}

// ClaimRepository is the data-access layer for anonymous claims.
type ClaimRepository interface {
	// CreateClaim inserts a claim using insert-if-absent semantics: a
	// unique-index collision on item_id maps to [ErrItemAlreadyClaimed], a
	// collision on secret_token maps to [ErrTokenCollision].
	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)

	FindClaimByID(ctx context.Context, claimID int64) (models.Claim, error)

	// FindClaimsByItemIDs returns the claims referencing any of the given
	// items. An empty input yields an empty result without touching the
	// database.
	FindClaimsByItemIDs(ctx context.Context, itemIDs []int64) ([]models.Claim, error)

	// DeleteClaim removes a single claim. Deleting an absent claim yields
	// [ErrClaimNotFound].
	DeleteClaim(ctx context.Context, claimID int64) error

	// DeleteClaimsByItemIDs removes every claim referencing the given items
	// and returns the number of rows deleted. Safe to re-run.
	DeleteClaimsByItemIDs(ctx context.Context, itemIDs []int64) (int64, error)
}
