package models

import "time"

// Claim marks an item as taken by an anonymous visitor.
//
// At most one claim may reference an item; the constraint is enforced by a
// unique index on item_id, so concurrent claim attempts resolve at the
// storage layer rather than through a check-then-insert race.
//
// SecretToken is a bearer capability: whoever holds it may retract the claim.
// It is returned exactly once — in the response that created the claim — and
// is never included in any other read path, including the owner's export.
type Claim struct {
	// ClaimID is the internal unique identifier of the claim.
	ClaimID int64 `json:"id"`

	// ItemID references the claimed item. Unique across all claims.
	ItemID int64 `json:"item_id"`

	// ClaimerName is the display name the visitor supplied when claiming.
	ClaimerName string `json:"claimer_name"`

	// ClaimerNote is an optional note from the claimer, visible to other
	// visitors of the public list.
	ClaimerNote string `json:"claimer_note,omitempty"`

	// SecretToken is the 32-character URL-safe retraction capability.
	// Never serialized by default; the creation response exposes it through
	// a dedicated response type.
	SecretToken string `json:"-"`

	// ClaimedAt is the timestamp when the claim was made.
	ClaimedAt time.Time `json:"claimed_at"`
}

// TableName returns the name of the database table
// associated with the Claim model.
func (c Claim) TableName() string {
	return "claims"
}
