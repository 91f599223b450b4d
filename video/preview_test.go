package video

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractRotatedFrame(t *testing.T) {
	argLog := filepath.Join(t.TempDir(), "args.log")
	ffmpegPath := writeStubFFmpeg(t, argLog)
	input := writeInput(t, t.TempDir(), "clip.mp4", "frame source")

	framePath, err := ExtractRotatedFrame(ffmpegPath, input, Rotation{Mode: Rotate90})
	if err != nil {
		t.Fatalf("ExtractRotatedFrame() unexpected error: %v", err)
	}
	defer func() { _ = os.Remove(framePath) }()

	if _, err := os.Stat(framePath); err != nil {
		t.Fatalf("Preview frame was not created: %v", err)
	}
	if !strings.HasSuffix(framePath, ".png") {
		t.Errorf("Expected a .png preview, got %q", framePath)
	}

	log, err := os.ReadFile(argLog)
	if err != nil {
		t.Fatalf("Failed to read stub arg log: %v", err)
	}

	// The stub reports 90.5s, so the frame is taken at the midpoint
	if !strings.Contains(string(log), "-ss 45.25") {
		t.Errorf("Expected a seek to the midpoint (45.25s), log:\n%s", log)
	}
	if !strings.Contains(string(log), "-vframes 1") {
		t.Errorf("Expected a single-frame extraction, log:\n%s", log)
	}
	if !strings.Contains(string(log), "-vf transpose=1") {
		t.Errorf("Expected the rotation filter, log:\n%s", log)
	}
}

func TestExtractMidpointFrame_NoFilter(t *testing.T) {
	argLog := filepath.Join(t.TempDir(), "args.log")
	ffmpegPath := writeStubFFmpeg(t, argLog)
	input := writeInput(t, t.TempDir(), "clip.mp4", "frame source")

	framePath, err := ExtractMidpointFrame(ffmpegPath, input)
	if err != nil {
		t.Fatalf("ExtractMidpointFrame() unexpected error: %v", err)
	}
	defer func() { _ = os.Remove(framePath) }()

	log, err := os.ReadFile(argLog)
	if err != nil {
		t.Fatalf("Failed to read stub arg log: %v", err)
	}
	if strings.Contains(string(log), "-vf ") {
		t.Errorf("Unrotated extraction should not pass a filter, log:\n%s", log)
	}
}

func TestExtractRotatedFrame_UnreadableInput(t *testing.T) {
	ffmpegPath := writeStubFFmpeg(t, filepath.Join(t.TempDir(), "args.log"))
	input := writeInput(t, t.TempDir(), "bad_clip.mp4", "unreadable")

	_, err := ExtractRotatedFrame(ffmpegPath, input, Rotation{Mode: Rotate90})
	if !errors.Is(err, ErrDurationUnavailable) {
		t.Errorf("Expected ErrDurationUnavailable for an unreadable input, got %v", err)
	}
}

func TestExtractRotatedFrame_InvalidAngle(t *testing.T) {
	ffmpegPath := writeStubFFmpeg(t, filepath.Join(t.TempDir(), "args.log"))

	_, err := ExtractRotatedFrame(ffmpegPath, "clip.mp4", Rotation{Mode: RotateCustom, Angle: math.NaN()})
	if !errors.Is(err, ErrInvalidAngle) {
		t.Errorf("Expected ErrInvalidAngle, got %v", err)
	}
}
