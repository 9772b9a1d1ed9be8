package catalog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/smrtypntz/squeeb/internal/db"
)

// setupTestCatalog creates a catalog over an in-memory database.
func setupTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	h, err := db.OpenMemory(zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { h.Close() })

	if !initSchema(h) {
		t.Fatal("failed to initialize schema")
	}
	return &Catalog{h: h, log: zerolog.Nop()}
}

func TestEnsureArtist(t *testing.T) {
	c := setupTestCatalog(t)

	a := NewArtist()
	a.Set("name", "Can")

	if !c.EnsureArtist(a) {
		t.Fatal("EnsureArtist failed")
	}
	id, ok := a.ID()
	if !ok || id == 0 {
		t.Fatalf("artist not hydrated with id: %d, %v", id, ok)
	}

	// Ensuring again finds the same row instead of inserting.
	again := NewArtist()
	again.Set("name", "Can")
	if !c.EnsureArtist(again) {
		t.Fatal("second EnsureArtist failed")
	}
	if againID, _ := again.ID(); againID != id {
		t.Errorf("second ensure got id %d, expected %d", againID, id)
	}

	stats := c.Stats()
	if stats.Artists != 1 {
		t.Errorf("artist count = %d, expected 1", stats.Artists)
	}
}

func TestEnsureArtistWithoutName(t *testing.T) {
	c := setupTestCatalog(t)

	if c.EnsureArtist(NewArtist()) {
		t.Error("expected failure for artist without name")
	}
}

func TestArtistByName(t *testing.T) {
	c := setupTestCatalog(t)

	a := NewArtist()
	a.Set("name", "Neu!")
	a.Set("musicbrainz_id", "d17f0f1b")
	c.EnsureArtist(a)

	found := c.ArtistByName("Neu!")
	if found == nil {
		t.Fatal("expected artist")
	}
	if got := found.GetString("musicbrainz_id"); got != "d17f0f1b" {
		t.Errorf("musicbrainz_id = %q", got)
	}
	if c.ArtistByName("Faust") != nil {
		t.Error("expected nil for unknown artist")
	}
}

func TestEnsureAlbumScopedByArtist(t *testing.T) {
	c := setupTestCatalog(t)

	can := NewArtist()
	can.Set("name", "Can")
	c.EnsureArtist(can)

	faust := NewArtist()
	faust.Set("name", "Faust")
	c.EnsureArtist(faust)

	// Two different artists can each have an album with the same name.
	first := NewAlbum()
	first.Set("name", "IV")
	first.SetArtist(can)
	if !c.EnsureAlbum(first) {
		t.Fatal("EnsureAlbum failed")
	}

	second := NewAlbum()
	second.Set("name", "IV")
	second.SetArtist(faust)
	if !c.EnsureAlbum(second) {
		t.Fatal("EnsureAlbum failed")
	}

	firstID, _ := first.ID()
	secondID, _ := second.ID()
	if firstID == secondID {
		t.Error("albums with different artists collapsed into one row")
	}

	// Same artist and name resolves to the existing row.
	again := NewAlbum()
	again.Set("name", "IV")
	again.SetArtist(can)
	c.EnsureAlbum(again)
	if againID, _ := again.ID(); againID != firstID {
		t.Errorf("ensure got id %d, expected %d", againID, firstID)
	}

	if got := c.Stats().Albums; got != 2 {
		t.Errorf("album count = %d, expected 2", got)
	}
}

func TestSaveTrackInsertAndUpdate(t *testing.T) {
	c := setupTestCatalog(t)

	tr := NewTrack()
	tr.Set("filepath", "/music/can/ege/1.flac")
	tr.Set("name", "Pinch")
	tr.Set("duration", int64(562))

	if !c.SaveTrack(tr) {
		t.Fatal("SaveTrack insert failed")
	}
	id, ok := tr.ID()
	if !ok || id == 0 {
		t.Fatal("track not hydrated with id after insert")
	}

	// Update through the same call once the id is attached.
	tr.Set("name", "Pinch (remaster)")
	if !c.SaveTrack(tr) {
		t.Fatal("SaveTrack update failed")
	}

	found := c.TrackByPath("/music/can/ege/1.flac")
	if found == nil {
		t.Fatal("expected track")
	}
	if got := found.GetString("name"); got != "Pinch (remaster)" {
		t.Errorf("name = %q", got)
	}
	if foundID, _ := found.ID(); foundID != id {
		t.Errorf("update changed the id: %d != %d", foundID, id)
	}
	if got := c.Stats().Tracks; got != 1 {
		t.Errorf("track count = %d, expected 1", got)
	}
}

func TestDeleteTrack(t *testing.T) {
	c := setupTestCatalog(t)

	tr := NewTrack()
	tr.Set("filepath", "/music/a.flac")
	c.SaveTrack(tr)
	id, _ := tr.ID()

	if !c.DeleteTrack(id) {
		t.Fatal("DeleteTrack failed")
	}
	if c.TrackByPath("/music/a.flac") != nil {
		t.Error("track still present after delete")
	}
}

func TestTracksByAlbum(t *testing.T) {
	c := setupTestCatalog(t)

	artist := NewArtist()
	artist.Set("name", "Can")
	c.EnsureArtist(artist)

	album := NewAlbum()
	album.Set("name", "Ege Bamyasi")
	album.SetArtist(artist)
	c.EnsureAlbum(album)

	for i, name := range []string{"Pinch", "Sing Swan Song"} {
		tr := NewTrack()
		tr.Set("filepath", "/music/can/ege/"+name+".flac")
		tr.Set("name", name)
		tr.Set("album_track_number", i+1)
		tr.SetAlbum(album)
		if !c.SaveTrack(tr) {
			t.Fatalf("SaveTrack %q failed", name)
		}
	}

	albumID, _ := album.ID()
	tracks := c.TracksByAlbum(albumID)
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if c.TracksByAlbum(albumID+1) != nil {
		t.Error("expected no tracks for unknown album")
	}
}

func TestAlbumsByArtist(t *testing.T) {
	c := setupTestCatalog(t)

	artist := NewArtist()
	artist.Set("name", "Can")
	c.EnsureArtist(artist)
	artistID, _ := artist.ID()

	for _, name := range []string{"Ege Bamyasi", "Future Days"} {
		al := NewAlbum()
		al.Set("name", name)
		al.SetArtist(artist)
		c.EnsureAlbum(al)
	}

	albums := c.AlbumsByArtist(artistID)
	if len(albums) != 2 {
		t.Fatalf("expected 2 albums, got %d", len(albums))
	}
}
