// squeeb scans configured music folders and maintains the catalog
// database (artists, albums, tracks).
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/smrtypntz/squeeb/internal/catalog"
	"github.com/smrtypntz/squeeb/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(cfg.LibrarySources) == 0 {
		return errors.New("no library_sources configured")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	dbPath, err := cfg.ResolveDatabasePath()
	if err != nil {
		return err
	}

	cat, err := catalog.Open(dbPath, logger)
	if err != nil {
		return err
	}
	defer cat.Close()

	logger.Info().
		Strs("sources", cfg.LibrarySources).
		Str("database", dbPath).
		Msg("starting library scan")

	start := time.Now()
	stats := cat.Scan(cfg.LibrarySources)

	logger.Info().
		Int("scanned", stats.Scanned).
		Int("added", len(stats.Added)).
		Int("updated", len(stats.Updated)).
		Int("skipped", len(stats.Skipped)).
		Int("failed", len(stats.Failed)).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")

	totals := cat.Stats()
	logger.Info().
		Int64("artists", totals.Artists).
		Int64("albums", totals.Albums).
		Int64("tracks", totals.Tracks).
		Msg("catalog totals")

	return nil
}
