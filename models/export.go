package models

import "time"

// ExportedClaim is the owner-facing projection of a claim inside a data
// export. The secret token is deliberately absent: it is issued exactly once
// at claim creation and never re-exposed.
type ExportedClaim struct {
	ClaimID     int64     `json:"id"`
	ItemID      int64     `json:"item_id"`
	ClaimerName string    `json:"claimer_name"`
	ClaimerNote string    `json:"claimer_note,omitempty"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

// ExportedItem is an item together with its claims inside a data export.
type ExportedItem struct {
	Item
	Claims []ExportedClaim `json:"claims"`
}

// ExportedList is a list together with its items inside a data export.
type ExportedList struct {
	List
	Items []ExportedItem `json:"items"`
}

// Export is the single nested document returned by the data-export endpoint.
// It aggregates everything the user owns: profile, lists, items, and the
// claims made against those items.
type Export struct {
	ExportedAt time.Time      `json:"exported_at"`
	User       User           `json:"user"`
	Lists      []ExportedList `json:"lists"`
}
