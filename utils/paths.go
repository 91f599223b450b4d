package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultOutputDir returns the platform-conventional destination for rotated
// videos: ~/Videos/rotated on Windows, ~/Movies/rotated elsewhere.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	if runtime.GOOS == "windows" {
		return filepath.Join(home, "Videos", "rotated")
	}
	return filepath.Join(home, "Movies", "rotated")
}
