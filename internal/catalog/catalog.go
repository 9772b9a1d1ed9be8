// Package catalog persists the music library (artists, albums, tracks)
// through the query builders. It owns the schema and the domain CRUD;
// all statements are built, never hand-written, so every value reaches
// SQLite as a bind parameter.
package catalog

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/smrtypntz/squeeb/internal/db"
	"github.com/smrtypntz/squeeb/internal/model"
	"github.com/smrtypntz/squeeb/internal/query"
)

const (
	tableArtists = "artists"
	tableAlbums  = "albums"
	tableTracks  = "tracks"
)

// Catalog is the music database. One open connection, single owner,
// explicit Close.
type Catalog struct {
	h   *db.Handler
	log zerolog.Logger
}

// Open opens (creating if needed) the catalog database at path.
func Open(path string, logger zerolog.Logger) (*Catalog, error) {
	h, err := db.Open(path, logger)
	if err != nil {
		return nil, err
	}
	if !initSchema(h) {
		h.Close()
		return nil, errors.New("catalog: schema initialization failed")
	}
	return &Catalog{h: h, log: logger}, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.h.Close()
}

// EnsureArtist looks the artist up by name, inserting it when missing,
// and hydrates the model with the persisted row (including its id).
func (c *Catalog) EnsureArtist(a *Artist) bool {
	name := a.Name()
	if name == "" {
		return false
	}

	byName := query.Select(tableArtists).Where(query.Cond("name", name))
	if row := c.h.QueryOne(byName); row != nil {
		a.FromRow(row, nil)
		return true
	}

	if !c.h.Exec(query.Insert(tableArtists).Values(persistValues(a.Model))) {
		return false
	}
	row := c.h.QueryOne(byName)
	if row == nil {
		return false
	}
	a.FromRow(row, nil)
	return true
}

// ArtistByName returns the named artist, or nil.
func (c *Catalog) ArtistByName(name string) *Artist {
	row := c.h.QueryOne(query.Select(tableArtists).Where(query.Cond("name", name)))
	if row == nil {
		return nil
	}
	return ArtistFromRow(row)
}

// Artists returns every artist in the catalog.
func (c *Catalog) Artists() []*Artist {
	rows := c.h.QueryAll(query.Select(tableArtists))
	var artists []*Artist
	for _, row := range rows {
		artists = append(artists, ArtistFromRow(row))
	}
	return artists
}

// DeleteArtist removes the artist with the given id.
func (c *Catalog) DeleteArtist(id int64) bool {
	return c.h.Exec(query.Delete(tableArtists).Where(query.Cond("id", id)))
}

// EnsureAlbum looks the album up by its natural key (name plus
// artist_id when set), inserting it when missing, and hydrates the
// model with the persisted row.
func (c *Catalog) EnsureAlbum(al *Album) bool {
	name := al.Name()
	if name == "" {
		return false
	}

	where := query.And(query.Cond("name", name))
	if artistID, ok := al.Get("artist_id"); ok {
		where.Add(query.Cond("artist_id", artistID))
	}
	byKey := query.Select(tableAlbums).Where(where)

	if row := c.h.QueryOne(byKey); row != nil {
		al.FromRow(row, nil)
		return true
	}

	if !c.h.Exec(query.Insert(tableAlbums).Values(persistValues(al.Model))) {
		return false
	}
	row := c.h.QueryOne(byKey)
	if row == nil {
		return false
	}
	al.FromRow(row, nil)
	return true
}

// AlbumsByArtist returns every album attached to the artist id.
func (c *Catalog) AlbumsByArtist(artistID int64) []*Album {
	rows := c.h.QueryAll(query.Select(tableAlbums).Where(query.Cond("artist_id", artistID)))
	var albums []*Album
	for _, row := range rows {
		albums = append(albums, AlbumFromRow(row))
	}
	return albums
}

// TrackByPath returns the track persisted for the file path, or nil.
func (c *Catalog) TrackByPath(path string) *Track {
	row := c.h.QueryOne(query.Select(tableTracks).Where(query.Cond("filepath", path)))
	if row == nil {
		return nil
	}
	return TrackFromRow(row)
}

// TracksByAlbum returns every track attached to the album id.
func (c *Catalog) TracksByAlbum(albumID int64) []*Track {
	rows := c.h.QueryAll(query.Select(tableTracks).Where(query.Cond("album_id", albumID)))
	var tracks []*Track
	for _, row := range rows {
		tracks = append(tracks, TrackFromRow(row))
	}
	return tracks
}

// SaveTrack inserts the track, or updates it when it already carries an
// id. After an insert the model is hydrated with the persisted row.
func (c *Catalog) SaveTrack(t *Track) bool {
	if id, ok := t.ID(); ok {
		return c.h.Exec(query.Update(tableTracks).
			Set(persistValues(t.Model)).
			Where(query.Cond("id", id)))
	}

	if !c.h.Exec(query.Insert(tableTracks).Values(persistValues(t.Model))) {
		return false
	}
	row := c.h.QueryOne(query.Select(tableTracks).Where(query.Cond("filepath", t.Path())))
	if row == nil {
		return false
	}
	t.FromRow(row, nil)
	return true
}

// DeleteTrack removes the track with the given id.
func (c *Catalog) DeleteTrack(id int64) bool {
	return c.h.Exec(query.Delete(tableTracks).Where(query.Cond("id", id)))
}

// Stats holds catalog row counts.
type Stats struct {
	Artists int64
	Albums  int64
	Tracks  int64
}

// Stats returns row counts for the three tables.
func (c *Catalog) Stats() Stats {
	return Stats{
		Artists: c.count(tableArtists),
		Albums:  c.count(tableAlbums),
		Tracks:  c.count(tableTracks),
	}
}

func (c *Catalog) count(table string) int64 {
	row := c.h.QueryOne(query.Select(table).Columns("COUNT(*) AS n"))
	if row == nil {
		return 0
	}
	return row.Int64("n")
}

// persistValues returns the model's fields as builder values, minus the
// id column: ids are assigned by SQLite on insert and immutable on
// update.
func persistValues(m *model.Model) *query.Values {
	v := query.NewValues()
	for _, field := range m.Fields() {
		if field == model.IDField {
			continue
		}
		value, _ := m.Get(field)
		v.Set(field, value)
	}
	return v
}
