package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// Uniqueness conflicts (email, share id, claim-per-item, secret token) are
// reported by the database's unique indexes and translated here — the
// application never does a read-then-write uniqueness check.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrListNotFound is returned when a list lookup produces no rows. It is
	// also what an ownership check yields when the list exists but belongs to
	// another user: not-found and not-yours are deliberately indistinguishable.
	ErrListNotFound = errors.New("list was not found")

	// ErrShareIDTaken is returned when an insert collides with an existing
	// share identifier. Callers regenerate the id and retry.
	ErrShareIDTaken = errors.New("share id already taken")

	// ErrItemNotFound is returned when an item lookup produces no rows.
	ErrItemNotFound = errors.New("item was not found")

	// ErrClaimNotFound is returned when a claim lookup or delete targets a
	// claim that does not exist.
	ErrClaimNotFound = errors.New("claim was not found")

	// ErrItemAlreadyClaimed is returned when a claim insert collides with the
	// unique index on claims.item_id — the at-most-one-claim invariant.
	ErrItemAlreadyClaimed = errors.New("item is already claimed")

	// ErrTokenCollision is returned when a claim insert collides with the
	// unique index on claims.secret_token. Callers regenerate the token and
	// retry up to a fixed bound.
	ErrTokenCollision = errors.New("secret token collision")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
