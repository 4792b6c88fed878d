package beets

// Album holds every field of a row in the beets "albums" table. Fields that
// beets leaves at their zero value are omitted when serialized; added is an
// internal timestamp and never serialized.
type Album struct {
	ID uint32 `json:"id"`
	// ArtPath is decoded lossily: invalid UTF-8 bytes become the Unicode
	// replacement character.
	ArtPath           *string  `json:"artpath,omitempty"`
	Added             float64  `json:"-"`
	AlbumArtist       string   `json:"albumartist"`
	AlbumArtistSort   string   `json:"albumartist_sort,omitempty"`
	AlbumArtistCredit string   `json:"albumartist_credit,omitempty"`
	Album             string   `json:"album"`
	Genre             string   `json:"genre,omitempty"`
	Year              uint32   `json:"year,omitempty"`
	Month             uint32   `json:"month,omitempty"`
	Day               uint32   `json:"day,omitempty"`
	DiscTotal         uint32   `json:"disctotal,omitempty"`
	Comp              bool     `json:"comp"`
	MBAlbumID         string   `json:"mb_albumid,omitempty"`
	MBAlbumArtistID   string   `json:"mb_albumartistid,omitempty"`
	AlbumType         string   `json:"albumtype,omitempty"`
	Label             string   `json:"label,omitempty"`
	MBReleaseGroupID  string   `json:"mb_releasegroupid,omitempty"`
	ASIN              string   `json:"asin,omitempty"`
	CatalogNum        string   `json:"catalognum,omitempty"`
	Script            string   `json:"script,omitempty"`
	Language          string   `json:"language,omitempty"`
	Country           string   `json:"country,omitempty"`
	AlbumStatus       string   `json:"albumstatus,omitempty"`
	AlbumDisambig     string   `json:"albumdisambig,omitempty"`
	RGAlbumGain       *float64 `json:"rg_album_gain,omitempty"`
	RGAlbumPeak       *float64 `json:"rg_album_peak,omitempty"`
	R128AlbumGain     *int32   `json:"r128_album_gain,omitempty"`
	OriginalYear      uint32   `json:"original_year,omitempty"`
	OriginalMonth     uint32   `json:"original_month,omitempty"`
	OriginalDay       uint32   `json:"original_day,omitempty"`
}

// Albums is the schema of the "albums" table. The field order here is the
// column order of the generated query; the binder relies on it.
var Albums = newSchema("albums", []field[Album]{
	col("id", colUint, func(a *Album, v uint32) { a.ID = v }),
	col("artpath", colOptPath, func(a *Album, v *string) { a.ArtPath = v }),
	col("added", colFloat, func(a *Album, v float64) { a.Added = v }),
	col("albumartist", colString, func(a *Album, v string) { a.AlbumArtist = v }),
	col("albumartist_sort", colString, func(a *Album, v string) { a.AlbumArtistSort = v }),
	col("albumartist_credit", colString, func(a *Album, v string) { a.AlbumArtistCredit = v }),
	col("album", colString, func(a *Album, v string) { a.Album = v }),
	col("genre", colString, func(a *Album, v string) { a.Genre = v }),
	col("year", colUint, func(a *Album, v uint32) { a.Year = v }),
	col("month", colUint, func(a *Album, v uint32) { a.Month = v }),
	col("day", colUint, func(a *Album, v uint32) { a.Day = v }),
	col("disctotal", colUint, func(a *Album, v uint32) { a.DiscTotal = v }),
	col("comp", colBool, func(a *Album, v bool) { a.Comp = v }),
	col("mb_albumid", colString, func(a *Album, v string) { a.MBAlbumID = v }),
	col("mb_albumartistid", colString, func(a *Album, v string) { a.MBAlbumArtistID = v }),
	col("albumtype", colString, func(a *Album, v string) { a.AlbumType = v }),
	col("label", colString, func(a *Album, v string) { a.Label = v }),
	col("mb_releasegroupid", colString, func(a *Album, v string) { a.MBReleaseGroupID = v }),
	col("asin", colString, func(a *Album, v string) { a.ASIN = v }),
	col("catalognum", colString, func(a *Album, v string) { a.CatalogNum = v }),
	col("script", colString, func(a *Album, v string) { a.Script = v }),
	col("language", colString, func(a *Album, v string) { a.Language = v }),
	col("country", colString, func(a *Album, v string) { a.Country = v }),
	col("albumstatus", colString, func(a *Album, v string) { a.AlbumStatus = v }),
	col("albumdisambig", colString, func(a *Album, v string) { a.AlbumDisambig = v }),
	col("rg_album_gain", colOptFloat, func(a *Album, v *float64) { a.RGAlbumGain = v }),
	col("rg_album_peak", colOptFloat, func(a *Album, v *float64) { a.RGAlbumPeak = v }),
	col("r128_album_gain", colOptInt, func(a *Album, v *int32) { a.R128AlbumGain = v }),
	col("original_year", colUint, func(a *Album, v uint32) { a.OriginalYear = v }),
	col("original_month", colUint, func(a *Album, v uint32) { a.OriginalMonth = v }),
	col("original_day", colUint, func(a *Album, v uint32) { a.OriginalDay = v }),
})
