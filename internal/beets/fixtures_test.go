package beets

import (
	"database/sql"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// openMemoryDB opens a fresh in-memory SQLite database limited to a single
// connection so every query sees the same data.
func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

// createTables builds the beets tables from the schemas themselves, so the
// fixture can never drift from the declared column lists. Columns are left
// untyped: SQLite keeps whatever storage class each inserted value has,
// which is exactly the drift this package must tolerate.
func createTables(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, ddl := range []string{
		tableDDL("albums", Albums.Columns()),
		tableDDL("items", Items.Columns()),
		tableDDL("item_attributes", ItemAttributes.Columns()),
		tableDDL("album_attributes", AlbumAttributes.Columns()),
	} {
		if _, err := db.Exec(ddl); err != nil {
			t.Fatalf("failed to create table: %v", err)
		}
	}
}

func tableDDL(table string, columns []string) string {
	defs := []string{"id INTEGER PRIMARY KEY"}
	defs = append(defs, columns[1:]...)
	return "CREATE TABLE " + table + " (" + strings.Join(defs, ", ") + ")"
}
