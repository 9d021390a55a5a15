package models

import "time"

// CreatedClaim is the one-time creation response for a claim. It is the only
// place the secret token ever crosses the API boundary.
type CreatedClaim struct {
	ClaimID     int64     `json:"id"`
	ItemID      int64     `json:"itemId"`
	ClaimerName string    `json:"claimerName"`
	SecretToken string    `json:"secretToken"`
	ClaimedAt   time.Time `json:"claimedAt"`
}

// CreatedClaimResponse is the creation response body: the claim sits under a
// "claim" key so clients address it by name.
type CreatedClaimResponse struct {
	Claim CreatedClaim `json:"claim"`
}

// ListWithItems is the owner-facing projection of a list joined with its
// items. Claim information is deliberately absent so the owner's surprise
// stays intact; claims appear only on the public view and in the export.
type ListWithItems struct {
	List
	Items []Item `json:"items"`
}

// PublicItem is the visitor-facing projection of an item on a shared list.
// It reveals whether the item is claimed and by whom, but never the claim's
// secret token.
type PublicItem struct {
	Item
	Claimed     bool   `json:"claimed"`
	ClaimerName string `json:"claimer_name,omitempty"`
	ClaimerNote string `json:"claimer_note,omitempty"`
}

// PublicList is the visitor-facing projection of a shared list.
type PublicList struct {
	Title     string       `json:"title"`
	ShareID   string       `json:"share_id"`
	OwnerName string       `json:"owner_name"`
	Items     []PublicItem `json:"items"`
}

// ItemMetadata is the best-effort result of scraping a product URL.
// Absent fields are omitted from the JSON document.
type ItemMetadata struct {
	Title       string `json:"title,omitempty"`
	ImageURL    string `json:"image,omitempty"`
	PriceCents  *int64 `json:"price,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}
