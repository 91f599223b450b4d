package video

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFrame(t *testing.T, dir, name string, painter func(x, y int) color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, painter(x, y))
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test frame: %v", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test frame: %v", err)
	}

	return path
}

func TestCalculateFramePerceptualHash(t *testing.T) {
	dir := t.TempDir()
	gradient := func(x, y int) color.Color {
		return color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 0, A: 255}
	}

	first := writeTestFrame(t, dir, "first.png", gradient)
	second := writeTestFrame(t, dir, "second.png", gradient)

	hashA, err := CalculateFramePerceptualHash(first)
	if err != nil {
		t.Fatalf("CalculateFramePerceptualHash() unexpected error: %v", err)
	}
	hashB, err := CalculateFramePerceptualHash(second)
	if err != nil {
		t.Fatalf("CalculateFramePerceptualHash() unexpected error: %v", err)
	}

	distance, err := hashA.Distance(hashB)
	if err != nil {
		t.Fatalf("Distance() unexpected error: %v", err)
	}
	if distance != 0 {
		t.Errorf("Identical frames should hash identically, got distance %d", distance)
	}
}

func TestCalculateFramePerceptualHash_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := CalculateFramePerceptualHash(path)
	if err == nil {
		t.Error("Expected error for a non-image file")
	}
}

func TestCalculateFramePerceptualHash_MissingFile(t *testing.T) {
	_, err := CalculateFramePerceptualHash("/nonexistent/frame.png")
	if err == nil {
		t.Error("Expected error for a missing file")
	}
}
