package db_test

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "todolist/internal/adapter/db"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := dbadapter.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}
