// Package tags reads audio-file metadata. It exposes the raw
// multi-valued tag map plus stream properties; interpreting the tags
// into catalog fields is the models' job.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.senan.xyz/taglib"
)

// File extensions accepted by the scanner.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtOPUS = ".opus"
	ExtM4A  = ".m4a"
)

// Supported reports whether path has a readable audio extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOGG, ExtOPUS, ExtM4A:
		return true
	}
	return false
}

// File is the metadata read from one audio file. Tags is the raw
// multi-valued tag map as stored in the file (keys like TITLE, ARTIST,
// ALBUMARTIST), values untouched.
type File struct {
	Path       string
	Tags       map[string][]string
	Duration   time.Duration
	Bitrate    int
	SampleRate int
	Channels   int
}

// Read reads tags and audio properties from path.
func Read(path string) (*File, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return nil, err
	}

	return &File{
		Path:       path,
		Tags:       raw,
		Duration:   props.Length,
		Bitrate:    int(props.Bitrate),
		SampleRate: int(props.SampleRate),
		Channels:   int(props.Channels),
	}, nil
}

// Get returns the first value for any of the given keys, or empty
// string if not found.
func (f *File) Get(keys ...string) string {
	for _, key := range keys {
		if values, ok := f.Tags[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// GetInt returns the first value for key as an integer, or 0 if not
// found or invalid. Handles "3/12" style track numbers.
func (f *File) GetInt(key string) int {
	v := f.Get(key)
	if v == "" {
		return 0
	}
	if i := strings.IndexByte(v, '/'); i >= 0 {
		v = v[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
