package catalog

import (
	"strconv"
	"time"

	"github.com/smrtypntz/squeeb/internal/db"
	"github.com/smrtypntz/squeeb/internal/model"
	"github.com/smrtypntz/squeeb/internal/tags"
)

// Artist is one row of the artists table.
type Artist struct {
	*model.Model
}

func NewArtist() *Artist {
	return &Artist{Model: model.New()}
}

// ArtistFromRow hydrates an artist from a persisted row.
func ArtistFromRow(row *db.Row) *Artist {
	a := NewArtist()
	a.FromRow(row, nil)
	return a
}

// Populate fills the artist from raw file tags.
func (a *Artist) Populate(f *tags.File) {
	a.SetIfPresent("name", f.Tags, "ARTIST")
	a.SetIfPresent("album_artist", f.Tags, "ALBUMARTIST")
	a.SetIfPresent("musicbrainz_id", f.Tags, "MUSICBRAINZ_ARTISTID")
}

// Name returns the artist name.
func (a *Artist) Name() string {
	return a.GetString("name")
}

// NeedsSplit reports whether the tags carried a separate album artist.
func (a *Artist) NeedsSplit() bool {
	return a.Has("album_artist")
}

// Split moves the album_artist field into its own Artist. The receiver
// keeps only track-artist fields afterwards.
func (a *Artist) Split() *Artist {
	albumArtist := NewArtist()
	albumArtist.Set("name", a.GetString("album_artist"))
	a.Delete("album_artist")
	return albumArtist
}

// Album is one row of the albums table.
type Album struct {
	*model.Model
}

func NewAlbum() *Album {
	return &Album{Model: model.New()}
}

// AlbumFromRow hydrates an album from a persisted row.
func AlbumFromRow(row *db.Row) *Album {
	al := NewAlbum()
	al.FromRow(row, nil)
	return al
}

// Populate fills the album from raw file tags.
func (al *Album) Populate(f *tags.File) {
	al.SetIfPresent("name", f.Tags, "ALBUM")
	al.SetIfPresent("genre", f.Tags, "GENRE")
	al.SetIfPresent("musicbrainz_id", f.Tags, "MUSICBRAINZ_ALBUMID")
	if year := parseYear(f.Get("DATE", "YEAR")); year > 0 {
		al.Set("year", year)
	}
}

// Name returns the album name.
func (al *Album) Name() string {
	return al.GetString("name")
}

// SetArtist attaches the album-artist foreign key once the artist has
// an id.
func (al *Album) SetArtist(a *Artist) {
	if id, ok := a.ID(); ok {
		al.Set("artist_id", id)
	}
}

// Track is one row of the tracks table.
type Track struct {
	*model.Model
}

func NewTrack() *Track {
	return &Track{Model: model.New()}
}

// TrackFromRow hydrates a track from a persisted row.
func TrackFromRow(row *db.Row) *Track {
	t := NewTrack()
	t.FromRow(row, nil)
	return t
}

// Populate fills the track from file metadata and raw tags.
func (t *Track) Populate(f *tags.File) {
	t.Set("filepath", f.Path)
	t.Set("duration", int64(f.Duration/time.Second))
	t.SetIfPresent("name", f.Tags, "TITLE")
	t.SetIfPresent("musicbrainz_id", f.Tags, "MUSICBRAINZ_TRACKID")
	if n := f.GetInt("TRACKNUMBER"); n > 0 {
		t.Set("album_track_number", n)
	}
	if f.Bitrate > 0 {
		t.Set("bitrate", f.Bitrate)
	}
	if f.SampleRate > 0 {
		t.Set("sample_rate", f.SampleRate)
	}
}

// Path returns the track file path.
func (t *Track) Path() string {
	return t.GetString("filepath")
}

// SetArtist attaches the track-artist foreign key.
func (t *Track) SetArtist(a *Artist) {
	if id, ok := a.ID(); ok {
		t.Set("artist_id", id)
	}
}

// SetAlbumArtist attaches the album-artist foreign key.
func (t *Track) SetAlbumArtist(a *Artist) {
	if id, ok := a.ID(); ok {
		t.Set("album_artist_id", id)
	}
}

// SetAlbum attaches the album foreign key.
func (t *Track) SetAlbum(al *Album) {
	if id, ok := al.ID(); ok {
		t.Set("album_id", id)
	}
}

// parseYear extracts a year from a DATE-style tag value like "1972" or
// "1972-06-01".
func parseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
