package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	db := &DB{
		DB:                 conn,
		logger:             logger.NewLogger("test"),
		errorClassificator: NewPostgresErrorClassifier(),
	}
	return db, mock, conn
}

// The stdlib driver must be registered by importing this package, otherwise
// sql.Open("pgx", ...) fails at startup.
func TestPgxDriverRegistered(t *testing.T) {
	for _, name := range sql.Drivers() {
		if name == "pgx" {
			return
		}
	}
	t.Fatalf(`driver "pgx" is not registered, have %v`, sql.Drivers())
}

func TestExecIdempotent_RetriesTransientFailure(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	mock.ExpectExec("DELETE FROM claims").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("DELETE FROM claims").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := db.execIdempotent(context.Background(), deleteClaim, int64(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		t.Fatalf("unexpected error reading affected rows: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected exactly one retry: %v", err)
	}
}

func TestExecIdempotent_GivesUpAfterOneRetry(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	mock.ExpectExec("DELETE FROM claims").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("DELETE FROM claims").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := db.execIdempotent(context.Background(), deleteClaim, int64(1))
	if err == nil {
		t.Fatal("expected error after second failed attempt, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected exactly two attempts: %v", err)
	}
}

func TestExecIdempotent_NoRetryOnNonRetryableError(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	mock.ExpectExec("DELETE FROM claims").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := db.execIdempotent(context.Background(), deleteClaim, int64(1))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("a non-retryable failure must not be retried: %v", err)
	}
}

func TestClassify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil error", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"deadlock detected", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"unknown code", &pgconn.PgError{Code: "P0001"}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
