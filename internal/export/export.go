// Package export shapes a loaded beets library into its external JSON form.
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/beetdump/internal/beets"
)

// Dump is the serialized form of a library: every album and item, plus the
// flexible attributes when requested. Entity-level omission rules (zero
// years, empty tags) live on the entity types themselves.
type Dump struct {
	Albums          []beets.Album     `json:"albums"`
	Items           []beets.Item      `json:"items"`
	AlbumAttributes []beets.Attribute `json:"album_attributes,omitempty"`
	ItemAttributes  []beets.Attribute `json:"item_attributes,omitempty"`
}

// Options controls the JSON encoding.
type Options struct {
	Pretty bool // indent with two spaces
}

// Load reads everything a dump needs from an open library connection.
// Attributes are optional because older beets databases may predate the
// flexible-attribute tables.
func Load(db *sql.DB, withAttributes bool) (*Dump, error) {
	albums, err := beets.ReadAlbums(db)
	if err != nil {
		return nil, err
	}
	items, err := beets.ReadItems(db)
	if err != nil {
		return nil, err
	}

	dump := &Dump{Albums: albums, Items: items}
	if withAttributes {
		dump.AlbumAttributes, err = beets.ReadAlbumAttributes(db)
		if err != nil {
			return nil, err
		}
		dump.ItemAttributes, err = beets.ReadItemAttributes(db)
		if err != nil {
			return nil, err
		}
	}
	return dump, nil
}

// Write encodes the dump as JSON to w.
func Write(w io.Writer, dump *Dump, opts Options) error {
	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(dump)
}

// Summary returns a one-line human-readable description of the dump.
func Summary(dump *Dump) string {
	s := fmt.Sprintf("%s albums, %s tracks",
		humanize.Comma(int64(len(dump.Albums))),
		humanize.Comma(int64(len(dump.Items))))
	if n := len(dump.AlbumAttributes) + len(dump.ItemAttributes); n > 0 {
		s += fmt.Sprintf(", %s attributes", humanize.Comma(int64(n)))
	}
	return s
}
