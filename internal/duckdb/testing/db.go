package duckdbtesting

import (
	"database/sql"
	"testing"
	"time"

	"github.com/chancharikmitra/vqascore/internal/duckdb"
	"github.com/chancharikmitra/vqascore/internal/testutil"
)

const (
	defaultTimeout = 2 * time.Second
)

// Open opens an in-memory DuckDB database with the schema applied and closes it when
// the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	conn, err := duckdb.Open(ctx, "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}
