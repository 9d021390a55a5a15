package models

import "time"

// List is a wishlist owned by exactly one user.
//
// A list carries a globally unique, URL-safe ShareID. When IsPublic is set,
// anyone holding the share link may view the list and claim its items;
// otherwise the list is visible to its owner only.
type List struct {
	// ListID is the internal unique identifier of the list.
	ListID int64 `json:"id"`

	// OwnerID references the user who owns the list. Items never store an
	// owner of their own; all authorization walks Item → List → OwnerID.
	OwnerID int64 `json:"owner_id"`

	// Title is the display title of the list.
	Title string `json:"title"`

	// IsPublic marks the list as reachable through its share link.
	IsPublic bool `json:"is_public"`

	// ShareID is the globally unique, URL-safe public identifier
	// (10 characters) used in share links.
	ShareID string `json:"share_id"`

	// CreatedAt is the timestamp when the list was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last list mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the List model.
func (l List) TableName() string {
	return "lists"
}
