package store

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/models"
)

func newTestKVStore(t *testing.T) (*kvStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	kv := &kvStore{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return kv, mock, db
}

func TestKVSet_NamespacesKey(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("animereview_favorites", `["21","20"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := kv.Set(ctx, KeyFavorites, []string{"21", "20"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestKVGet_RoundTrip(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"value"}).
		AddRow(`{"notifications":true,"dark_mode":false,"language":"es"}`)

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("animereview_preferences").
		WillReturnRows(rows)

	var prefs models.Preferences
	if err := kv.Get(ctx, KeyPreferences, &prefs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(prefs, models.DefaultPreferences()) {
		t.Errorf("expected default preferences, got %+v", prefs)
	}
}

func TestKVGet_MissingKey(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("animereview_session_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	var token string
	err := kv.Get(ctx, KeySessionToken, &token)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKVGet_CorruptBlob(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{not json`)

	mock.ExpectQuery("SELECT value FROM kv").
		WillReturnRows(rows)

	var prefs models.Preferences
	err := kv.Get(ctx, KeyPreferences, &prefs)
	if !errors.Is(err, ErrDeserializingValue) {
		t.Fatalf("expected ErrDeserializingValue, got %v", err)
	}
}

func TestKVRemove_AbsentIsNoOp(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM kv").
		WithArgs("animereview_session_token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := kv.Remove(ctx, KeySessionToken); err != nil {
		t.Fatalf("removing an absent key must not fail, got %v", err)
	}
}

func TestKVKeys_StripsNamespace(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"key"}).
		AddRow("animereview_favorites").
		AddRow("animereview_initialized").
		AddRow("animereview_preferences")

	mock.ExpectQuery("SELECT key FROM kv").
		WithArgs("animereview_%").
		WillReturnRows(rows)

	keys, err := kv.Keys(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{KeyFavorites, KeyInitialized, KeyPreferences}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}
}

func TestKVClear_Reseeds(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM kv").
		WithArgs("animereview_%").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO kv").
		WithArgs("animereview_favorites", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO kv").
		WithArgs("animereview_preferences", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO kv").
		WithArgs("animereview_initialized", "true").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := kv.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
