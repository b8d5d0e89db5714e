// Package testdb provides a migrated in-memory SQLite store for tests.
package testdb

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/repository"
)

// Open returns a fresh in-memory database with the full schema applied. It is
// closed when the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	db, err := repository.NewDB("sqlite3", ":memory:")
	require.NoError(t, err, "open sqlite")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repository.Migrate(db, "sqlite3"), "apply migrations")
	return db
}

// NewStore returns a Store over a fresh database.
func NewStore(t testing.TB) *repository.Store {
	t.Helper()
	return repository.NewStore(Open(t))
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t testing.TB, store *repository.Store, name, email string) *model.User {
	t.Helper()

	user := &model.User{Name: name, Email: email, HashedPassword: "not-a-real-hash"}
	require.NoError(t, store.Users.Create(t.Context(), user), "create user %s", email)
	return user
}
