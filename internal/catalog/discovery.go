package catalog

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/smrtypntz/squeeb/internal/tags"
)

// discoverFiles walks the source directories and returns every
// supported audio file, sorted. Unreadable entries are skipped, not
// fatal: a library scan should survive a permission hole.
func discoverFiles(sources []string) []string {
	var files []string
	for _, src := range sources {
		_ = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != src && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if tags.Supported(path) {
				files = append(files, path)
			}
			return nil
		})
	}
	sort.Strings(files)
	return files
}
