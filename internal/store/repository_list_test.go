package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/models"
	"github.com/jackc/pgerrcode"
)

func newTestListRepo(t *testing.T) (*listRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &listRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func listRows(now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows(listColumns).
		AddRow(1, 42, "Birthday", true, "a1b2c3d4e5", now, now)
}

func TestCreateList_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()
	list := models.List{
		OwnerID:  42,
		Title:    "Birthday",
		IsPublic: true,
		ShareID:  "a1b2c3d4e5",
	}

	mock.ExpectQuery("INSERT INTO lists").
		WithArgs(list.OwnerID, list.Title, list.IsPublic, list.ShareID).
		WillReturnRows(listRows(time.Now()))

	created, err := repo.CreateList(ctx, list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ListID != 1 {
		t.Errorf("expected ListID=1, got %d", created.ListID)
	}
	if created.ShareID != list.ShareID {
		t.Errorf("expected share_id %s, got %s", list.ShareID, created.ShareID)
	}
}

func TestCreateList_ShareIDTaken(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO lists").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "lists_share_id_key"))

	_, err := repo.CreateList(ctx, models.List{OwnerID: 42})
	if !errors.Is(err, ErrShareIDTaken) {
		t.Fatalf("expected ErrShareIDTaken, got %v", err)
	}
}

func TestFindOwnedList_Success(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT list_id").
		WithArgs(int64(1), int64(42)).
		WillReturnRows(listRows(time.Now()))

	found, err := repo.FindOwnedList(ctx, 1, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.OwnerID != 42 {
		t.Errorf("expected OwnerID=42, got %d", found.OwnerID)
	}
}

// A list owned by someone else yields the same error as an absent list.
func TestFindOwnedList_WrongOwnerIndistinguishableFromAbsent(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT list_id").
		WithArgs(int64(1), int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT list_id").
		WithArgs(int64(12345), int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, errWrongOwner := repo.FindOwnedList(ctx, 1, 99)
	_, errAbsent := repo.FindOwnedList(ctx, 12345, 42)

	if !errors.Is(errWrongOwner, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound for wrong owner, got %v", errWrongOwner)
	}
	if !errors.Is(errAbsent, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound for absent list, got %v", errAbsent)
	}
	if errWrongOwner.Error() != errAbsent.Error() {
		t.Errorf("wrong-owner and absent errors must be identical: %q vs %q", errWrongOwner, errAbsent)
	}
}

func TestFindListByShareID_NotFound(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT list_id").
		WithArgs("nosuchlist").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindListByShareID(ctx, "nosuchlist")
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestFindListsByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT list_id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(listColumns))

	lists, err := repo.FindListsByOwner(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("expected no lists, got %d", len(lists))
	}
}

func TestUpdateList_NotOwned(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "Renamed"

	mock.ExpectQuery("UPDATE lists").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateList(ctx, 1, 99, models.UpdateListRequest{Title: &title})
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestDeleteListsByOwner_ReportsCount(t *testing.T) {
	repo, mock, db := newTestListRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM lists").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteListsByOwner(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}
}
