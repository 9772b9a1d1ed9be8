package catalog

import (
	"testing"
	"time"

	"github.com/smrtypntz/squeeb/internal/tags"
)

func testFile() *tags.File {
	return &tags.File{
		Path: "/music/neu/neu75/01.flac",
		Tags: map[string][]string{
			"TITLE":       {"Isi"},
			"ARTIST":      {"Neu!"},
			"ALBUMARTIST": {"Neu!"},
			"ALBUM":       {"Neu! '75"},
			"DATE":        {"1975-02-01"},
			"GENRE":       {"krautrock"},
			"TRACKNUMBER": {"1/6"},
		},
		Duration:   244 * time.Second,
		Bitrate:    1024,
		SampleRate: 44100,
		Channels:   2,
	}
}

func TestArtistPopulateAndSplit(t *testing.T) {
	f := testFile()
	f.Tags["ALBUMARTIST"] = []string{"Various Artists"}

	a := NewArtist()
	a.Populate(f)

	if got := a.Name(); got != "Neu!" {
		t.Errorf("name = %q", got)
	}
	if !a.NeedsSplit() {
		t.Fatal("expected NeedsSplit with an album artist tag")
	}

	albumArtist := a.Split()
	if got := albumArtist.Name(); got != "Various Artists" {
		t.Errorf("album artist name = %q", got)
	}
	// The split field leaves the track artist.
	if a.Has("album_artist") {
		t.Error("album_artist still present after split")
	}
	if a.NeedsSplit() {
		t.Error("NeedsSplit after split")
	}
}

func TestArtistPopulateWithoutAlbumArtist(t *testing.T) {
	f := testFile()
	delete(f.Tags, "ALBUMARTIST")

	a := NewArtist()
	a.Populate(f)

	if a.NeedsSplit() {
		t.Error("NeedsSplit without an album artist tag")
	}
}

func TestAlbumPopulate(t *testing.T) {
	al := NewAlbum()
	al.Populate(testFile())

	if got := al.Name(); got != "Neu! '75" {
		t.Errorf("name = %q", got)
	}
	if got := al.GetInt64("year"); got != 1975 {
		t.Errorf("year = %d", got)
	}
	if got := al.GetString("genre"); got != "krautrock" {
		t.Errorf("genre = %q", got)
	}
}

func TestTrackPopulate(t *testing.T) {
	tr := NewTrack()
	tr.Populate(testFile())

	if got := tr.Path(); got != "/music/neu/neu75/01.flac" {
		t.Errorf("filepath = %q", got)
	}
	if got := tr.GetString("name"); got != "Isi" {
		t.Errorf("name = %q", got)
	}
	if got := tr.GetInt64("duration"); got != 244 {
		t.Errorf("duration = %d", got)
	}
	if got := tr.GetInt64("album_track_number"); got != 1 {
		t.Errorf("album_track_number = %d", got)
	}
	if got := tr.GetInt64("bitrate"); got != 1024 {
		t.Errorf("bitrate = %d", got)
	}
	if got := tr.GetInt64("sample_rate"); got != 44100 {
		t.Errorf("sample_rate = %d", got)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		date     string
		expected int
	}{
		{"1975", 1975},
		{"1975-02-01", 1975},
		{"75", 0},
		{"", 0},
		{"n/a date", 0},
	}

	for _, tt := range tests {
		if got := parseYear(tt.date); got != tt.expected {
			t.Errorf("parseYear(%q) = %d, expected %d", tt.date, got, tt.expected)
		}
	}
}
