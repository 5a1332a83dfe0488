package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tieba/internal/logger"
)

func newTestTokenStore(t *testing.T) (*sqliteTokenStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test", io.Discard)
	s := &sqliteTokenStore{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
	return s, mock, db
}

var (
	selectTokenSQL = regexp.QuoteMeta("SELECT value FROM client_state WHERE key = ? LIMIT 1")
	upsertTokenSQL = regexp.QuoteMeta("INSERT INTO client_state (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE")
	deleteTokenSQL = regexp.QuoteMeta("DELETE FROM client_state WHERE key = ?")
)

func TestToken_Success(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectQuery(selectTokenSQL).
		WithArgs(AccessTokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))

	token, err := s.Token(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc" {
		t.Errorf("expected token abc, got %q", token)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestToken_NoRowIsEmpty(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectQuery(selectTokenSQL).
		WithArgs(AccessTokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	token, err := s.Token(context.Background())
	if err != nil {
		t.Fatalf("expected absence not to be an error, got: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestToken_DBError(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectQuery(selectTokenSQL).
		WithArgs(AccessTokenKey).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Token(context.Background())
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestSaveToken_Success(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectExec(upsertTokenSQL).
		WithArgs(AccessTokenKey, "new-token", s.now()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.SaveToken(context.Background(), "new-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveToken_EmptyRejected(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	if err := s.SaveToken(context.Background(), ""); !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
	// no statement may reach the database
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected db interaction: %v", err)
	}
}

func TestSaveToken_DBError(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectExec(upsertTokenSQL).
		WillReturnError(errors.New("database is locked"))

	if err := s.SaveToken(context.Background(), "tok"); !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestDeleteToken_Success(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectExec(deleteTokenSQL).
		WithArgs(AccessTokenKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DeleteToken(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteToken_MissingRowIsNotAnError(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectExec(deleteTokenSQL).
		WithArgs(AccessTokenKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteToken(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteToken_DBError(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	mock.ExpectExec(deleteTokenSQL).
		WillReturnError(errors.New("readonly database"))

	if err := s.DeleteToken(context.Background()); !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestTokenStore_LogsFailuresToOwnLogger(t *testing.T) {
	s, mock, db := newTestTokenStore(t)
	defer db.Close()

	var buf bytes.Buffer
	s.logger = logger.NewLogger("test", &buf)

	mock.ExpectQuery(selectTokenSQL).
		WithArgs(AccessTokenKey).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectExec(upsertTokenSQL).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectExec(deleteTokenSQL).
		WillReturnError(errors.New("readonly database"))

	// a bare context carries no logger; the store must not depend on one
	ctx := context.Background()
	_, _ = s.Token(ctx)
	_ = s.SaveToken(ctx, "tok")
	_ = s.DeleteToken(ctx)

	out := buf.String()
	for _, want := range []string{
		"disk I/O error",
		"database is locked",
		"readonly database",
		"*sqliteTokenStore.Token",
		"*sqliteTokenStore.SaveToken",
		"*sqliteTokenStore.DeleteToken",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
	if got := strings.Count(out, `"level":"error"`); got != 3 {
		t.Errorf("expected 3 error entries, got %d", got)
	}
}
