package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:dbx_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY, v TEXT);`)
	require.NoError(t, err)
	return db
}

// Both *sql.DB and *sql.Tx must be usable through DBTX without callers
// knowing which one they hold.
func TestDBTX_SatisfiedByDBAndTx(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	var h DBTX = db
	_, err := h.ExecContext(ctx, `INSERT INTO t(v) VALUES ('db')`)
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	h = tx
	_, err = h.ExecContext(ctx, `INSERT INTO t(v) VALUES ('tx')`)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	require.Equal(t, 2, n)
}

func TestDBTX_QueryRowContext(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	var h DBTX = db
	_, err := h.ExecContext(ctx, `INSERT INTO t(v) VALUES ('one')`)
	require.NoError(t, err)

	var v string
	err = h.QueryRowContext(ctx, `SELECT v FROM t ORDER BY id LIMIT 1`).Scan(&v)
	require.NoError(t, err)
	require.Equal(t, "one", v)
}
