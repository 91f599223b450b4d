package video

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RotatedFilename derives the output file name by inserting suffix before
// the original extension: clip.mp4 → clip_rotated.mp4.
func RotatedFilename(inputPath, suffix string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + suffix + ext
}

// ResolveOutputPath computes the final destination for a rotated output.
// Resolving the same input and directory twice yields the same path; nothing
// guards against two different inputs deriving the same name, in which case
// the later item overwrites the earlier one.
func ResolveOutputPath(inputPath, outputDir, suffix string) string {
	return filepath.Join(outputDir, RotatedFilename(inputPath, suffix))
}

// EnsureOutputDir creates the output directory and any missing parents.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
