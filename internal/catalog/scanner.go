package catalog

import (
	"sync"

	"github.com/smrtypntz/squeeb/internal/tags"
)

const numWorkers = 8

// ScanStats holds the outcome of one library scan.
type ScanStats struct {
	Scanned int      // supported files discovered
	Added   []string // paths inserted
	Updated []string // paths already present, re-imported
	Skipped []string // files without artist or album tags
	Failed  []string // unreadable files or failed writes
}

// scanResult is one file's outcome from the tag-reading workers.
type scanResult struct {
	path    string
	file    *tags.File
	skipped bool
	err     error
}

// Scan discovers audio files under the given sources, reads their tags
// in parallel, and imports them into the catalog. Database writes stay
// sequential; a single SQLite connection is not safe for concurrent
// writers.
func (c *Catalog) Scan(sources []string) *ScanStats {
	files := discoverFiles(sources)
	stats := &ScanStats{Scanned: len(files)}
	if len(files) == 0 {
		return stats
	}

	workCh := make(chan string, len(files))
	resultCh := make(chan scanResult, len(files))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for path := range workCh {
				f, err := tags.Read(path)
				if err != nil {
					resultCh <- scanResult{path: path, err: err}
					continue
				}
				// Files without artist or album can't be placed in the
				// catalog hierarchy.
				if f.Get("ARTIST") == "" || f.Get("ALBUM") == "" {
					resultCh <- scanResult{path: path, skipped: true}
					continue
				}
				resultCh <- scanResult{path: path, file: f}
			}
		})
	}

	go func() {
		for _, path := range files {
			workCh <- path
		}
		close(workCh)
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	for r := range resultCh {
		switch {
		case r.err != nil:
			c.log.Warn().Err(r.err).Str("path", r.path).Msg("failed to read tags")
			stats.Failed = append(stats.Failed, r.path)
		case r.skipped:
			c.log.Debug().Str("path", r.path).Msg("missing artist or album tag, skipping")
			stats.Skipped = append(stats.Skipped, r.path)
		default:
			c.importFile(r.file, stats)
		}
	}

	return stats
}

// importFile persists one tagged file: artists first (splitting out a
// separate album artist when tagged), then the album, then the track
// with its foreign keys attached.
func (c *Catalog) importFile(f *tags.File, stats *ScanStats) {
	artist := NewArtist()
	artist.Populate(f)

	albumArtist := artist
	if artist.NeedsSplit() {
		if split := artist.Split(); split.Name() != artist.Name() {
			albumArtist = split
		}
	}

	if !c.EnsureArtist(artist) {
		stats.Failed = append(stats.Failed, f.Path)
		return
	}
	if albumArtist != artist && !c.EnsureArtist(albumArtist) {
		stats.Failed = append(stats.Failed, f.Path)
		return
	}

	album := NewAlbum()
	album.Populate(f)
	album.SetArtist(albumArtist)
	if !c.EnsureAlbum(album) {
		stats.Failed = append(stats.Failed, f.Path)
		return
	}

	track := NewTrack()
	track.Populate(f)
	track.SetArtist(artist)
	track.SetAlbumArtist(albumArtist)
	track.SetAlbum(album)

	existing := c.TrackByPath(f.Path)
	if existing != nil {
		if id, ok := existing.ID(); ok {
			track.Set("id", id)
		}
	}

	if !c.SaveTrack(track) {
		stats.Failed = append(stats.Failed, f.Path)
		return
	}
	if existing != nil {
		stats.Updated = append(stats.Updated, f.Path)
	} else {
		stats.Added = append(stats.Added, f.Path)
	}
}
