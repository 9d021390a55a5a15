package service

import (
	"context"

	"github.com/MKhiriev/wishkeeper/models"
)

// AuthService handles registration, credential verification, and the session
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService handles the authenticated user's own account: profile,
// activity tracking, data export, and the account cascade delete.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)

	// Export assembles the single nested document of everything the user
	// owns. Claim secret tokens are never included.
	Export(ctx context.Context, userID int64) (models.Export, error)

	// DeleteAccount re-authenticates with the current password, requires the
	// literal confirmation string "DELETE", then runs the full cascade:
	// claims → items → lists → user. Each step is idempotent.
	DeleteAccount(ctx context.Context, userID int64, request models.DeleteAccountRequest) error

	// TouchLastActive bumps the activity timestamp. Best effort.
	TouchLastActive(ctx context.Context, userID int64)
}

// ListService handles wishlist CRUD, the share-link public view, and the
// list-scoped cascade delete.
type ListService interface {
	CreateList(ctx context.Context, ownerID int64, request models.CreateListRequest) (models.List, error)
	GetLists(ctx context.Context, ownerID int64) ([]models.List, error)
	GetList(ctx context.Context, listID, ownerID int64) (models.ListWithItems, error)
	UpdateList(ctx context.Context, listID, ownerID int64, request models.UpdateListRequest) (models.List, error)

	// DeleteList removes the list and everything under it, children first:
	// claims → items → list. Requires ownership.
	DeleteList(ctx context.Context, listID, ownerID int64) error

	// GetPublicList resolves a share link into the visitor-facing view.
	// A private or absent list yields store.ErrListNotFound either way.
	GetPublicList(ctx context.Context, shareID string) (models.PublicList, error)
}

// ItemService handles item CRUD. Every mutation re-derives the owning list
// for the acting user; items never carry a cached owner.
type ItemService interface {
	CreateItem(ctx context.Context, ownerID, listID int64, request models.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, ownerID, itemID int64, request models.UpdateItemRequest) (models.Item, error)

	// DeleteItem removes the item and its claim, if any, children first.
	DeleteItem(ctx context.Context, ownerID, itemID int64) error
}

// ClaimService handles the anonymous claim protocol.
type ClaimService interface {
	// CreateClaim claims an item on a public list. The returned value is the
	// only place the secret token ever crosses the API boundary.
	CreateClaim(ctx context.Context, request models.CreateClaimRequest) (models.CreatedClaim, error)

	// RetractClaim deletes a claim when the presented token matches.
	// The comparison is timing safe.
	RetractClaim(ctx context.Context, claimID int64, token string) error
}

// MetadataService fetches best-effort product metadata for a URL so the
// client can prefill an item form.
type MetadataService interface {
	Fetch(ctx context.Context, request models.MetadataRequest) (models.ItemMetadata, error)
}
