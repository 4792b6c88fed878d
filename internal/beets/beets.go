// Package beets reads a beets music-library database into typed records.
//
// The schema belongs to beets and is fixed externally; this package only
// decodes it, tolerating the encoding drift that exists between beets
// versions (notably TEXT vs BLOB path columns). The database is opened
// strictly read-only and is never mutated.
//
// Reads are synchronous and single-threaded. Callers wanting concurrent
// reads should open one connection per goroutine with Open; read-only mode
// makes that safe.
package beets

import (
	"database/sql"

	dbutil "github.com/llehouerou/beetdump/internal/db"
)

// Open opens the database at path in read-only mode and verifies the
// connection. Any failure (missing file, permissions, corrupt header)
// yields a KindOpen error.
func Open(path string) (*sql.DB, error) {
	db, err := dbutil.OpenReadOnly(path)
	if err != nil {
		return nil, &Error{Kind: KindOpen, Err: err}
	}
	return db, nil
}

// ReadAlbums reads every row of the albums table.
func ReadAlbums(db *sql.DB) ([]Album, error) {
	return Read(db, Albums)
}

// ReadItems reads every row of the items table.
func ReadItems(db *sql.DB) ([]Item, error) {
	return Read(db, Items)
}

// ReadItemAttributes reads every flexible attribute attached to items.
func ReadItemAttributes(db *sql.DB) ([]Attribute, error) {
	return Read(db, ItemAttributes)
}

// ReadAlbumAttributes reads every flexible attribute attached to albums.
func ReadAlbumAttributes(db *sql.DB) ([]Attribute, error) {
	return Read(db, AlbumAttributes)
}

// ReadAll opens the database at path read-only and reads all albums and
// items. The first failure short-circuits; its kind already says which
// phase failed.
func ReadAll(path string) ([]Album, []Item, error) {
	db, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	albums, err := ReadAlbums(db)
	if err != nil {
		return nil, nil, err
	}
	items, err := ReadItems(db)
	if err != nil {
		return nil, nil, err
	}
	return albums, items, nil
}
