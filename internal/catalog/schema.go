package catalog

import "github.com/smrtypntz/squeeb/internal/db"

const schema = `
	CREATE TABLE IF NOT EXISTS artists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		musicbrainz_id TEXT
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_artist_name ON artists(name);

	CREATE TABLE IF NOT EXISTS albums (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		year INTEGER,
		genre TEXT,
		artist_id INTEGER REFERENCES artists(id),
		musicbrainz_id TEXT
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_album_name_year_artist ON albums(name, year, artist_id);

	CREATE TABLE IF NOT EXISTS tracks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filepath TEXT NOT NULL UNIQUE,
		name TEXT,
		duration INTEGER,
		bitrate INTEGER,
		sample_rate INTEGER,
		artist_id INTEGER REFERENCES artists(id),
		album_artist_id INTEGER REFERENCES artists(id),
		album_id INTEGER REFERENCES albums(id),
		album_track_number INTEGER,
		musicbrainz_id TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_tracks_artist ON tracks(artist_id);
	CREATE INDEX IF NOT EXISTS idx_tracks_album ON tracks(album_id);
`

func initSchema(h *db.Handler) bool {
	return h.ExecRaw(schema)
}
