package beets

// Item holds every field of a row in the beets "items" table (one track).
// AlbumID is a plain optional reference to the owning album's id; no
// referential integrity is checked at this layer.
type Item struct {
	ID uint32 `json:"id"`
	// Path is decoded lossily: invalid UTF-8 bytes become the Unicode
	// replacement character.
	Path                string   `json:"path"`
	AlbumID             *uint32  `json:"album_id,omitempty"`
	Title               string   `json:"title"`
	Artist              string   `json:"artist"`
	ArtistSort          string   `json:"artist_sort,omitempty"`
	ArtistCredit        string   `json:"artist_credit,omitempty"`
	Album               string   `json:"album,omitempty"`
	AlbumArtist         string   `json:"albumartist,omitempty"`
	AlbumArtistSort     string   `json:"albumartist_sort,omitempty"`
	AlbumArtistCredit   string   `json:"albumartist_credit,omitempty"`
	Genre               string   `json:"genre,omitempty"`
	Lyricist            string   `json:"lyricist,omitempty"`
	Composer            string   `json:"composer,omitempty"`
	ComposerSort        string   `json:"composer_sort,omitempty"`
	Arranger            string   `json:"arranger,omitempty"`
	Grouping            string   `json:"grouping,omitempty"`
	Year                uint32   `json:"year,omitempty"`
	Month               uint32   `json:"month,omitempty"`
	Day                 uint32   `json:"day,omitempty"`
	Track               uint32   `json:"track,omitempty"`
	TrackTotal          uint32   `json:"tracktotal,omitempty"`
	Disc                uint32   `json:"disc,omitempty"`
	DiscTotal           uint32   `json:"disctotal,omitempty"`
	Lyrics              string   `json:"lyrics,omitempty"`
	Comments            string   `json:"comments,omitempty"`
	BPM                 uint32   `json:"bpm,omitempty"`
	Comp                bool     `json:"comp"`
	MBTrackID           string   `json:"mb_trackid,omitempty"`
	MBAlbumID           string   `json:"mb_albumid,omitempty"`
	MBArtistID          string   `json:"mb_artistid,omitempty"`
	MBAlbumArtistID     string   `json:"mb_albumartistid,omitempty"`
	MBReleaseTrackID    string   `json:"mb_releasetrackid,omitempty"`
	AlbumType           string   `json:"albumtype,omitempty"`
	Label               string   `json:"label,omitempty"`
	AcoustIDFingerprint string   `json:"acoustid_fingerprint,omitempty"`
	AcoustIDID          string   `json:"acoustid_id,omitempty"`
	MBReleaseGroupID    string   `json:"mb_releasegroupid,omitempty"`
	ASIN                string   `json:"asin,omitempty"`
	CatalogNum          string   `json:"catalognum,omitempty"`
	Script              string   `json:"script,omitempty"`
	Language            string   `json:"language,omitempty"`
	Country             string   `json:"country,omitempty"`
	AlbumStatus         string   `json:"albumstatus,omitempty"`
	Media               string   `json:"media,omitempty"`
	AlbumDisambig       string   `json:"albumdisambig,omitempty"`
	DiscTitle           string   `json:"disctitle,omitempty"`
	Encoder             string   `json:"encoder,omitempty"`
	RGTrackGain         *float64 `json:"rg_track_gain,omitempty"`
	RGTrackPeak         *float64 `json:"rg_track_peak,omitempty"`
	RGAlbumGain         *float64 `json:"rg_album_gain,omitempty"`
	RGAlbumPeak         *float64 `json:"rg_album_peak,omitempty"`
	R128TrackGain       *float64 `json:"r128_track_gain,omitempty"`
	R128AlbumGain       *float64 `json:"r128_album_gain,omitempty"`
	OriginalYear        uint32   `json:"original_year,omitempty"`
	OriginalMonth       uint32   `json:"original_month,omitempty"`
	OriginalDay         uint32   `json:"original_day,omitempty"`
	InitialKey          *string  `json:"initial_key,omitempty"`
	Length              float64  `json:"length"`
	Bitrate             uint32   `json:"bitrate,omitempty"`
	Format              string   `json:"format,omitempty"`
	SampleRate          uint32   `json:"samplerate,omitempty"`
	BitDepth            uint32   `json:"bitdepth,omitempty"`
	Channels            uint32   `json:"channels,omitempty"`
	Mtime               float64  `json:"-"`
	Added               float64  `json:"-"`
}

// Items is the schema of the "items" table.
var Items = newSchema("items", []field[Item]{
	col("id", colUint, func(t *Item, v uint32) { t.ID = v }),
	col("path", colPath, func(t *Item, v string) { t.Path = v }),
	col("album_id", colOptUint, func(t *Item, v *uint32) { t.AlbumID = v }),
	col("title", colString, func(t *Item, v string) { t.Title = v }),
	col("artist", colString, func(t *Item, v string) { t.Artist = v }),
	col("artist_sort", colString, func(t *Item, v string) { t.ArtistSort = v }),
	col("artist_credit", colString, func(t *Item, v string) { t.ArtistCredit = v }),
	col("album", colString, func(t *Item, v string) { t.Album = v }),
	col("albumartist", colString, func(t *Item, v string) { t.AlbumArtist = v }),
	col("albumartist_sort", colString, func(t *Item, v string) { t.AlbumArtistSort = v }),
	col("albumartist_credit", colString, func(t *Item, v string) { t.AlbumArtistCredit = v }),
	col("genre", colString, func(t *Item, v string) { t.Genre = v }),
	col("lyricist", colString, func(t *Item, v string) { t.Lyricist = v }),
	col("composer", colString, func(t *Item, v string) { t.Composer = v }),
	col("composer_sort", colString, func(t *Item, v string) { t.ComposerSort = v }),
	col("arranger", colString, func(t *Item, v string) { t.Arranger = v }),
	col("grouping", colString, func(t *Item, v string) { t.Grouping = v }),
	col("year", colUint, func(t *Item, v uint32) { t.Year = v }),
	col("month", colUint, func(t *Item, v uint32) { t.Month = v }),
	col("day", colUint, func(t *Item, v uint32) { t.Day = v }),
	col("track", colUint, func(t *Item, v uint32) { t.Track = v }),
	col("tracktotal", colUint, func(t *Item, v uint32) { t.TrackTotal = v }),
	col("disc", colUint, func(t *Item, v uint32) { t.Disc = v }),
	col("disctotal", colUint, func(t *Item, v uint32) { t.DiscTotal = v }),
	col("lyrics", colString, func(t *Item, v string) { t.Lyrics = v }),
	col("comments", colString, func(t *Item, v string) { t.Comments = v }),
	col("bpm", colUint, func(t *Item, v uint32) { t.BPM = v }),
	col("comp", colBool, func(t *Item, v bool) { t.Comp = v }),
	col("mb_trackid", colString, func(t *Item, v string) { t.MBTrackID = v }),
	col("mb_albumid", colString, func(t *Item, v string) { t.MBAlbumID = v }),
	col("mb_artistid", colString, func(t *Item, v string) { t.MBArtistID = v }),
	col("mb_albumartistid", colString, func(t *Item, v string) { t.MBAlbumArtistID = v }),
	col("mb_releasetrackid", colString, func(t *Item, v string) { t.MBReleaseTrackID = v }),
	col("albumtype", colString, func(t *Item, v string) { t.AlbumType = v }),
	col("label", colString, func(t *Item, v string) { t.Label = v }),
	col("acoustid_fingerprint", colString, func(t *Item, v string) { t.AcoustIDFingerprint = v }),
	col("acoustid_id", colString, func(t *Item, v string) { t.AcoustIDID = v }),
	col("mb_releasegroupid", colString, func(t *Item, v string) { t.MBReleaseGroupID = v }),
	col("asin", colString, func(t *Item, v string) { t.ASIN = v }),
	col("catalognum", colString, func(t *Item, v string) { t.CatalogNum = v }),
	col("script", colString, func(t *Item, v string) { t.Script = v }),
	col("language", colString, func(t *Item, v string) { t.Language = v }),
	col("country", colString, func(t *Item, v string) { t.Country = v }),
	col("albumstatus", colString, func(t *Item, v string) { t.AlbumStatus = v }),
	col("media", colString, func(t *Item, v string) { t.Media = v }),
	col("albumdisambig", colString, func(t *Item, v string) { t.AlbumDisambig = v }),
	col("disctitle", colString, func(t *Item, v string) { t.DiscTitle = v }),
	col("encoder", colString, func(t *Item, v string) { t.Encoder = v }),
	col("rg_track_gain", colOptFloat, func(t *Item, v *float64) { t.RGTrackGain = v }),
	col("rg_track_peak", colOptFloat, func(t *Item, v *float64) { t.RGTrackPeak = v }),
	col("rg_album_gain", colOptFloat, func(t *Item, v *float64) { t.RGAlbumGain = v }),
	col("rg_album_peak", colOptFloat, func(t *Item, v *float64) { t.RGAlbumPeak = v }),
	col("r128_track_gain", colOptFloat, func(t *Item, v *float64) { t.R128TrackGain = v }),
	col("r128_album_gain", colOptFloat, func(t *Item, v *float64) { t.R128AlbumGain = v }),
	col("original_year", colUint, func(t *Item, v uint32) { t.OriginalYear = v }),
	col("original_month", colUint, func(t *Item, v uint32) { t.OriginalMonth = v }),
	col("original_day", colUint, func(t *Item, v uint32) { t.OriginalDay = v }),
	col("initial_key", colOptString, func(t *Item, v *string) { t.InitialKey = v }),
	col("length", colFloat, func(t *Item, v float64) { t.Length = v }),
	col("bitrate", colUint, func(t *Item, v uint32) { t.Bitrate = v }),
	col("format", colString, func(t *Item, v string) { t.Format = v }),
	col("samplerate", colUint, func(t *Item, v uint32) { t.SampleRate = v }),
	col("bitdepth", colUint, func(t *Item, v uint32) { t.BitDepth = v }),
	col("channels", colUint, func(t *Item, v uint32) { t.Channels = v }),
	col("mtime", colFloat, func(t *Item, v float64) { t.Mtime = v }),
	col("added", colFloat, func(t *Item, v float64) { t.Added = v }),
})
