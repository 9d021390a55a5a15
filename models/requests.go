package models

// RegisterRequest carries the credentials and profile data for account
// creation. Email is lowercase-normalized before any uniqueness check.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest carries the credentials for an authentication attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a partial profile mutation. Nil fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name        *string      `json:"name,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// DeleteAccountRequest carries the re-authentication data required before an
// account cascade delete. Confirmation must equal the literal "DELETE".
type DeleteAccountRequest struct {
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// CreateListRequest carries the data for creating a wishlist.
type CreateListRequest struct {
	Title    string `json:"title"`
	IsPublic bool   `json:"is_public"`
}

// UpdateListRequest carries a partial list mutation. Nil fields are left
// unchanged.
type UpdateListRequest struct {
	Title    *string `json:"title,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

// CreateItemRequest carries the data for adding an item to a list.
// The target list comes from the URL, not the body.
type CreateItemRequest struct {
	Title      string `json:"title"`
	URL        string `json:"url,omitempty"`
	PriceCents *int64 `json:"price_cents,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	Category   string `json:"category,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateItemRequest carries a partial item mutation. Nil fields are left
// unchanged.
type UpdateItemRequest struct {
	Title      *string `json:"title,omitempty"`
	URL        *string `json:"url,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	Category   *string `json:"category,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// CreateClaimRequest carries the data an anonymous visitor submits to claim
// an item on a public list.
type CreateClaimRequest struct {
	ItemID      int64  `json:"itemId"`
	ClaimerName string `json:"claimerName"`
	ClaimerNote string `json:"claimerNote,omitempty"`
}

// MetadataRequest carries the product URL to scrape.
type MetadataRequest struct {
	URL string `json:"url"`
}
