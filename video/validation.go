package video

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsVideoFile checks if the given file extension is one of known video file extensions
func IsVideoFile(path string) bool {
	var desiredExtensions = []string{".mp4", ".webm", ".mov", ".flv", ".mkv", ".avi", ".wmv", ".mpg"}

	ext := filepath.Ext(path)
	ext = strings.ToLower(ext) // handle cases where extension is upper case

	for _, v := range desiredExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// ValidateVideoIntegrity checks if a video file is corrupted or invalid
// before it is handed to the rotation pipeline. The probe binary is resolved
// by the caller, like the transcoder path everywhere else. Returns an error
// if the file is corrupted or cannot be read.
func ValidateVideoIntegrity(ffprobePath, filePath string) error {
	// First check if file exists and is readable
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}

	// Use ffprobe with a minimal probe to just validate the file structure
	cmd := exec.Command(ffprobePath, "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", "--", filePath)
	output, err := cmd.CombinedOutput()

	if err != nil {
		// Check for common corruption indicators
		outputStr := string(output)
		if strings.Contains(outputStr, "moov atom not found") {
			return fmt.Errorf("video file is corrupted (missing metadata): %s", extractFirstLine(outputStr))
		}
		if strings.Contains(outputStr, "Invalid data found") ||
			strings.Contains(outputStr, "corrupt") ||
			strings.Contains(outputStr, "truncated") ||
			strings.Contains(outputStr, "Invalid argument") {
			return fmt.Errorf("video file is corrupted or invalid: %s", extractFirstLine(outputStr))
		}

		// Return generic ffprobe error with output
		return fmt.Errorf("ffprobe error: %w\nOutput: %s", err, extractFirstLine(outputStr))
	}

	return nil
}

// extractFirstLine extracts just the first line from a multi-line string
func extractFirstLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		return strings.TrimSpace(lines[0])
	}
	return "no additional information available"
}
