// Package dbtest provides an in-memory SQLite database for adapter tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"loomspace_backend/internal/platform/db"
)

// New opens a fresh in-memory SQLite database with every table migrated.
// The pool is limited to one connection because each SQLite :memory: connection
// is a separate database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(db.Config{
		Driver:        db.DriverSQLite,
		Path:          ":memory:",
		RunMigrations: true,
		MaxOpenConns:  1,
	})
	require.NoError(t, err, "failed to initialize test database")
	t.Cleanup(func() { _ = db.Close(gdb) })

	return gdb
}
