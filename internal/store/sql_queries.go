package store

import (
	"github.com/MKhiriev/wishkeeper/models"
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Column sets scanned by the repositories. Order matters: every Scan call
// follows the order declared here.
var (
	userColumns = []string{
		"user_id", "email", "password_hash", "name", "preferences",
		"created_at", "updated_at", "last_active_at",
	}
	listColumns = []string{
		"list_id", "owner_id", "title", "is_public", "share_id",
		"created_at", "updated_at",
	}
	itemColumns = []string{
		"item_id", "list_id", "title", "url", "price_cents", "image_url",
		"category", "priority", "notes", "created_at", "updated_at",
	}
	claimColumns = []string{
		"claim_id", "item_id", "claimer_name", "claimer_note", "secret_token",
		"claimed_at",
	}
)

// Static statements. Simple single-row operations keep plain SQL; anything
// with dynamic argument sets goes through squirrel below.
const (
	createUser = `INSERT INTO users (email, password_hash, name, preferences)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, preferences, created_at, updated_at, last_active_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, preferences, created_at, updated_at, last_active_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, preferences, created_at, updated_at, last_active_at
    FROM users
    WHERE user_id = $1;`

	touchLastActive = `UPDATE users SET last_active_at = now() WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	createList = `INSERT INTO lists (owner_id, title, is_public, share_id)
    VALUES ($1, $2, $3, $4)
    RETURNING list_id, owner_id, title, is_public, share_id, created_at, updated_at;`

	deleteList = `DELETE FROM lists WHERE list_id = $1;`

	deleteListsByOwner = `DELETE FROM lists WHERE owner_id = $1;`

	createItem = `INSERT INTO items (list_id, title, url, price_cents, image_url, category, priority, notes)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING item_id, list_id, title, url, price_cents, image_url, category, priority, notes, created_at, updated_at;`

	deleteItem = `DELETE FROM items WHERE item_id = $1;`

	createClaim = `INSERT INTO claims (item_id, claimer_name, claimer_note, secret_token)
    VALUES ($1, $2, $3, $4)
    RETURNING claim_id, item_id, claimer_name, claimer_note, secret_token, claimed_at;`

	deleteClaim = `DELETE FROM claims WHERE claim_id = $1;`
)

// buildUpdateUserQuery builds the partial profile update. Only name and
// preferences are caller-mutable; updated_at always advances.
func buildUpdateUserQuery(user models.User, preferences []byte) (string, []any, error) {
	return psql.Update(user.TableName()).
		Set("name", user.Name).
		Set("preferences", preferences).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
}

// buildSelectListsByOwnerQuery selects every list owned by the user, newest
// first.
func buildSelectListsByOwnerQuery(ownerID int64) (string, []any, error) {
	return psql.Select(listColumns...).
		From("lists").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildSelectOwnedListQuery is the ownership-chain resolution query: the list
// row is returned only when both the id and the owner match.
func buildSelectOwnedListQuery(listID, ownerID int64) (string, []any, error) {
	return psql.Select(listColumns...).
		From("lists").
		Where(sq.Eq{"list_id": listID, "owner_id": ownerID}).
		ToSql()
}

// buildSelectListQuery selects a list by a single equality condition
// (list_id or share_id).
func buildSelectListQuery(column string, value any) (string, []any, error) {
	return psql.Select(listColumns...).
		From("lists").
		Where(sq.Eq{column: value}).
		ToSql()
}

// buildUpdateListQuery builds a partial list mutation. Nil request fields are
// left untouched; updated_at always advances. The owner predicate makes the
// statement a no-op against lists the user does not own.
func buildUpdateListQuery(listID, ownerID int64, update models.UpdateListRequest) (string, []any, error) {
	builder := psql.Update("lists").
		Set("updated_at", sq.Expr("now()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.IsPublic != nil {
		builder = builder.Set("is_public", *update.IsPublic)
	}

	return builder.
		Where(sq.Eq{"list_id": listID, "owner_id": ownerID}).
		Suffix("RETURNING " + joinColumns(listColumns)).
		ToSql()
}

// buildSelectItemsQuery selects items by a single equality condition
// (item_id, list_id, or list_id IN for a slice value).
func buildSelectItemsQuery(column string, value any) (string, []any, error) {
	return psql.Select(itemColumns...).
		From("items").
		Where(sq.Eq{column: value}).
		OrderBy("item_id").
		ToSql()
}

// buildUpdateItemQuery builds a partial item mutation. Nil request fields are
// left untouched; updated_at always advances.
func buildUpdateItemQuery(itemID int64, update models.UpdateItemRequest) (string, []any, error) {
	builder := psql.Update("items").
		Set("updated_at", sq.Expr("now()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.PriceCents != nil {
		builder = builder.Set("price_cents", *update.PriceCents)
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", *update.ImageURL)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	return builder.
		Where(sq.Eq{"item_id": itemID}).
		Suffix("RETURNING " + joinColumns(itemColumns)).
		ToSql()
}

// buildDeleteItemsByListIDsQuery builds the cascade step removing every item
// of the given lists.
func buildDeleteItemsByListIDsQuery(listIDs []int64) (string, []any, error) {
	return psql.Delete("items").
		Where(sq.Eq{"list_id": listIDs}).
		ToSql()
}

// buildSelectClaimsByItemIDsQuery selects every claim referencing any of the
// given items.
func buildSelectClaimsByItemIDsQuery(itemIDs []int64) (string, []any, error) {
	return psql.Select(claimColumns...).
		From("claims").
		Where(sq.Eq{"item_id": itemIDs}).
		OrderBy("claim_id").
		ToSql()
}

// buildSelectClaimByIDQuery selects a single claim by id.
func buildSelectClaimByIDQuery(claimID int64) (string, []any, error) {
	return psql.Select(claimColumns...).
		From("claims").
		Where(sq.Eq{"claim_id": claimID}).
		ToSql()
}

// buildDeleteClaimsByItemIDsQuery builds the cascade step removing every
// claim referencing the given items.
func buildDeleteClaimsByItemIDsQuery(itemIDs []int64) (string, []any, error) {
	return psql.Delete("claims").
		Where(sq.Eq{"item_id": itemIDs}).
		ToSql()
}

func joinColumns(columns []string) string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
