// Package db holds small database/sql helpers shared across the tool.
package db

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite percent-decodes URI filenames, so the characters that would
// terminate or corrupt the path have to be escaped before building the DSN.
var dsnEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// OpenReadOnly opens the SQLite database at path in read-only mode and
// verifies the connection before returning it. The returned handle can
// never write: the connection itself is opened mode=ro.
func OpenReadOnly(path string) (*sql.DB, error) {
	dsn := "file:" + dsnEscaper.Replace(path) + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// NullInt64Value returns the int64 value or 0 if not valid.
func NullInt64Value(n sql.NullInt64) int64 {
	if !n.Valid {
		return 0
	}
	return n.Int64
}

// NullStringValue returns the string value or empty string if not valid.
func NullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
