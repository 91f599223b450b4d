package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// FFmpegPath resolves the ffmpeg binary to invoke. The FFROTATE_FFMPEG
// environment variable overrides PATH lookup, for bundled or non-standard
// installs. An unresolvable binary is a fatal error: it is checked once
// before any batch starts, never per item.
func FFmpegPath() (string, error) {
	if override := os.Getenv("FFROTATE_FFMPEG"); override != "" {
		if _, err := exec.LookPath(override); err != nil {
			return "", fmt.Errorf("FFROTATE_FFMPEG points to an unusable binary: %w", err)
		}
		return override, nil
	}

	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found in PATH. %s", getInstallationInstructions())
	}
	return path, nil
}

// FFprobePath resolves the ffprobe binary, with the same override scheme as
// FFmpegPath: FFROTATE_FFPROBE wins over PATH lookup.
func FFprobePath() (string, error) {
	if override := os.Getenv("FFROTATE_FFPROBE"); override != "" {
		if _, err := exec.LookPath(override); err != nil {
			return "", fmt.Errorf("FFROTATE_FFPROBE points to an unusable binary: %w", err)
		}
		return override, nil
	}

	path, err := exec.LookPath("ffprobe")
	if err != nil {
		return "", fmt.Errorf("ffprobe not found in PATH. %s", getInstallationInstructions())
	}
	return path, nil
}

// ValidateFFmpegDependencies checks if ffmpeg and ffprobe are available
func ValidateFFmpegDependencies() error {
	if _, err := FFmpegPath(); err != nil {
		return err
	}

	// ffprobe backs the pre-flight integrity check
	if _, err := FFprobePath(); err != nil {
		return err
	}

	return nil
}

// getInstallationInstructions returns platform-specific installation instructions
func getInstallationInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or yum install ffmpeg (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}
