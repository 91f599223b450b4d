package video

import (
	"bytes"
	"errors"
	"os/exec"
	"regexp"
	"strconv"
)

// ErrDurationUnavailable is returned when ffmpeg's diagnostic output carries
// no Duration marker, typically because the input is corrupt or unreadable.
// It must propagate rather than default to zero: a zero duration would make
// the preview extractor silently seek to the start of the file.
var ErrDurationUnavailable = errors.New("could not determine video duration")

// durationRegex matches the "Duration: HH:MM:SS.ff" marker ffmpeg prints
// while probing an input.
var durationRegex = regexp.MustCompile(`Duration:\s*(\d+):(\d{2}):(\d{2}(?:\.\d+)?)`)

// GetVideoDuration runs ffmpeg against the input in null-output mode, forcing
// it to print file metadata to stderr, and returns the total duration in
// seconds.
func GetVideoDuration(ffmpegPath, videoFile string) (float64, error) {
	cmd := exec.Command(ffmpegPath, "-i", videoFile, "-f", "null", "-")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// A broken input makes ffmpeg exit non-zero, but the metadata banner may
	// still be present, so the exit status is ignored and only the parse
	// result decides.
	_ = cmd.Run()

	return parseDuration(stderr.String())
}

// parseDuration extracts the duration in seconds from ffmpeg diagnostic
// output. "Duration: 00:01:30.50" parses to 90.5.
func parseDuration(diagnostics string) (float64, error) {
	m := durationRegex.FindStringSubmatch(diagnostics)
	if m == nil {
		return 0, ErrDurationUnavailable
	}

	h, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ErrDurationUnavailable
	}
	min, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, ErrDurationUnavailable
	}
	s, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, ErrDurationUnavailable
	}

	return h*3600 + min*60 + s, nil
}
