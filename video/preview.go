package video

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ExtractRotatedFrame extracts a single frame from the temporal midpoint of
// the video with the rotation filter applied, written to a freshly created
// temporary PNG. The returned file belongs to the caller, who must remove it
// on every exit path after use.
func ExtractRotatedFrame(ffmpegPath, videoFile string, r Rotation) (string, error) {
	filter, err := RotationFilter(r)
	if err != nil {
		return "", err
	}
	return extractMidpointFrame(ffmpegPath, videoFile, filter)
}

// ExtractMidpointFrame extracts an unrotated midpoint frame. Used by the
// verify path to sample an already-rotated output.
func ExtractMidpointFrame(ffmpegPath, videoFile string) (string, error) {
	return extractMidpointFrame(ffmpegPath, videoFile, "")
}

func extractMidpointFrame(ffmpegPath, videoFile, filter string) (string, error) {
	duration, err := GetVideoDuration(ffmpegPath, videoFile)
	if err != nil {
		return "", err
	}
	seek := duration / 2

	tmp, err := os.CreateTemp("", "ffrotate_preview_*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create preview file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()

	args := []string{"-y", "-ss", strconv.FormatFloat(seek, 'f', -1, 64), "-i", videoFile}
	if filter != "" {
		args = append(args, "-vf", filter)
	}
	args = append(args, "-vframes", "1", tmpPath)

	cmd := exec.Command(ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to extract preview frame: %s", diagnosticMessage(stderr.String(), err))
	}

	return tmpPath, nil
}
