package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/puravida/internal/db"
)

// NewTestDB returns a migrated in-memory call log closed at test cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test call log")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}
