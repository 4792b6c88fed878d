package export

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/llehouerou/beetdump/internal/beets"
)

func setupLibrary(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, cols := range []struct {
		table   string
		columns []string
	}{
		{"albums", beets.Albums.Columns()},
		{"items", beets.Items.Columns()},
		{"item_attributes", beets.ItemAttributes.Columns()},
		{"album_attributes", beets.AlbumAttributes.Columns()},
	} {
		defs := []string{"id INTEGER PRIMARY KEY"}
		defs = append(defs, cols.columns[1:]...)
		_, err := db.Exec("CREATE TABLE " + cols.table + " (" + strings.Join(defs, ", ") + ")")
		require.NoError(t, err)
	}

	stmts := []string{
		`INSERT INTO albums (id, albumartist, album, year, comp) VALUES (1, 'Artist', 'Album', 2001, 0)`,
		`INSERT INTO items (id, path, title, artist, length, comp)
			VALUES (1, '/m/01.flac', 'Song', 'Artist', 180.0, 0)`,
		`INSERT INTO item_attributes (id, entity_id, key, value) VALUES (1, 1, 'mood', 'calm')`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func TestLoad(t *testing.T) {
	db := setupLibrary(t)

	dump, err := Load(db, false)
	require.NoError(t, err)
	assert.Len(t, dump.Albums, 1)
	assert.Len(t, dump.Items, 1)
	assert.Nil(t, dump.ItemAttributes)

	dump, err = Load(db, true)
	require.NoError(t, err)
	assert.Len(t, dump.ItemAttributes, 1)
	assert.Equal(t, "mood", dump.ItemAttributes[0].Key)
}

func TestWrite_OmitsDefaultFields(t *testing.T) {
	db := setupLibrary(t)
	dump, err := Load(db, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, dump, Options{}))

	var decoded struct {
		Albums []map[string]any `json:"albums"`
		Items  []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Albums, 1)
	album := decoded.Albums[0]

	// Present: non-zero and always-serialized fields
	assert.Equal(t, "Artist", album["albumartist"])
	assert.Equal(t, float64(2001), album["year"])
	assert.Equal(t, false, album["comp"])

	// Absent: zero-valued optional fields and internal timestamps
	assert.NotContains(t, album, "genre")
	assert.NotContains(t, album, "month")
	assert.NotContains(t, album, "artpath")
	assert.NotContains(t, album, "added")

	item := decoded.Items[0]
	assert.Equal(t, "/m/01.flac", item["path"])
	assert.Equal(t, float64(180), item["length"])
	assert.NotContains(t, item, "album_id")
	assert.NotContains(t, item, "mtime")
}

func TestWrite_Pretty(t *testing.T) {
	dump := &Dump{}
	var compact, pretty bytes.Buffer
	require.NoError(t, Write(&compact, dump, Options{}))
	require.NoError(t, Write(&pretty, dump, Options{Pretty: true}))
	assert.Greater(t, pretty.Len(), compact.Len())
}

func TestSummary(t *testing.T) {
	dump := &Dump{
		Albums: make([]beets.Album, 2),
		Items:  make([]beets.Item, 3),
	}
	assert.Equal(t, "2 albums, 3 tracks", Summary(dump))

	dump.ItemAttributes = make([]beets.Attribute, 4)
	assert.Equal(t, "2 albums, 3 tracks, 4 attributes", Summary(dump))
}
