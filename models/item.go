package models

import "time"

// Item priorities. Medium is the default when a request omits the field.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Item is a single wishlist entry owned by exactly one list.
//
// Items do not carry an owner reference; ownership is always re-derived by
// resolving the owning list for the acting user.
type Item struct {
	// ItemID is the internal unique identifier of the item.
	ItemID int64 `json:"id"`

	// ListID references the list the item belongs to.
	ListID int64 `json:"list_id"`

	// Title is the display title of the item.
	Title string `json:"title"`

	// URL is an optional HTTPS link to the product page.
	URL string `json:"url,omitempty"`

	// PriceCents is the optional price in the smallest currency unit.
	// Nil means "no price set"; when present the value is non-negative.
	PriceCents *int64 `json:"price_cents,omitempty"`

	// ImageURL is an optional link to a product image.
	ImageURL string `json:"image_url,omitempty"`

	// Category is an optional free-form grouping label.
	Category string `json:"category,omitempty"`

	// Priority is one of high, medium, low. Defaults to medium.
	Priority string `json:"priority"`

	// Notes is an optional free-form note from the list owner.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last item mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
