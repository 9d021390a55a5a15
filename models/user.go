package models

import (
	"encoding/json"
	"time"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique, lowercase-normalized address the user signs in with.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Preferences holds the user's UI and notification settings.
	// Always present; empty fields are replaced with defaults on read.
	Preferences Preferences `json:"preferences"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updated_at"`

	// LastActiveAt records the most recent authenticated request.
	LastActiveAt time.Time `json:"last_active_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Preferences is the user preference set stored as a JSONB document.
type Preferences struct {
	Currency    string `json:"currency"`
	Theme       string `json:"theme"`
	HideClaimed bool   `json:"hide_claimed"`
}

// DefaultPreferences returns the preference set applied to accounts that have
// never customised their settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Currency: "USD",
		Theme:    "light",
	}
}

// WithDefaults fills empty preference fields with their default values.
func (p Preferences) WithDefaults() Preferences {
	defaults := DefaultPreferences()
	if p.Currency == "" {
		p.Currency = defaults.Currency
	}
	if p.Theme == "" {
		p.Theme = defaults.Theme
	}
	return p
}

// Value serializes the preference set for storage in a JSONB column.
func (p Preferences) Value() ([]byte, error) {
	return json.Marshal(p)
}

// Scan deserializes a JSONB column value into the preference set and applies
// defaults for missing fields.
func (p *Preferences) Scan(src []byte) error {
	if len(src) > 0 {
		if err := json.Unmarshal(src, p); err != nil {
			return err
		}
	}
	*p = p.WithDefaults()
	return nil
}
