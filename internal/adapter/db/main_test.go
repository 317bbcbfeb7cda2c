package db_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	dbadapter "github.com/Artem310/TaskManagerProject/internal/adapter/db"
	"github.com/Artem310/TaskManagerProject/internal/core/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile("testdata/schema.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, repo *dbadapter.UserRepository, email string) domain.User {
	t.Helper()

	user, err := repo.Create(context.Background(), domain.User{
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return user
}

func ptr[T any](value T) *T {
	return &value
}
