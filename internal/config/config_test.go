package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/library/albums",
			expected: filepath.Join(home, "music", "library", "albums"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.expected {
				t.Errorf("expandPath(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolveDatabasePathOverride(t *testing.T) {
	cfg := &Config{DatabasePath: "/tmp/test/squeeb.db"}

	path, err := cfg.ResolveDatabasePath()
	if err != nil {
		t.Fatalf("ResolveDatabasePath failed: %v", err)
	}
	if path != "/tmp/test/squeeb.db" {
		t.Errorf("path = %q", path)
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	if len(paths) == 0 {
		t.Fatal("expected at least one config path")
	}
	// Local config.toml has the highest priority (loaded last).
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last path = %q, expected config.toml", paths[len(paths)-1])
	}
}
