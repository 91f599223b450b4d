package video

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name        string
		diagnostics string
		expected    float64
	}{
		{
			name:        "fractional seconds",
			diagnostics: "  Duration: 00:01:30.50, start: 0.000000, bitrate: 1280 kb/s",
			expected:    90.5,
		},
		{
			name:        "hours and minutes",
			diagnostics: "  Duration: 01:30:00.00, start: 0.000000, bitrate: 800 kb/s",
			expected:    5400,
		},
		{
			name:        "zero duration",
			diagnostics: "Duration: 00:00:00.00",
			expected:    0,
		},
		{
			name: "marker buried in full banner",
			diagnostics: "Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'clip.mp4':\n" +
				"  Metadata:\n    major_brand     : isom\n" +
				"  Duration: 00:02:15.25, start: 0.000000, bitrate: 2400 kb/s\n" +
				"  Stream #0:0(und): Video: h264",
			expected: 135.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, err := parseDuration(tt.diagnostics)
			if err != nil {
				t.Fatalf("parseDuration() unexpected error: %v", err)
			}
			if seconds != tt.expected {
				t.Errorf("parseDuration() = %v, expected %v", seconds, tt.expected)
			}
		})
	}
}

func TestParseDuration_NoMarker(t *testing.T) {
	tests := []struct {
		name        string
		diagnostics string
	}{
		{"empty output", ""},
		{"corrupt input banner", "clip.mp4: Invalid data found when processing input"},
		{"unrelated text", "frame=  100 fps=25 q=0.0 size=N/A time=00:00:04.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDuration(tt.diagnostics)
			if !errors.Is(err, ErrDurationUnavailable) {
				t.Errorf("Expected ErrDurationUnavailable, got %v", err)
			}
		})
	}
}

func TestGetVideoDuration_MissingBinary(t *testing.T) {
	_, err := GetVideoDuration("/nonexistent/ffmpeg", "clip.mp4")
	if err == nil {
		t.Error("Expected error when the transcoder binary does not exist")
	}
}
