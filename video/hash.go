package video

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/corona10/goimagehash"
)

// CalculateFramePerceptualHash decodes an extracted frame image and returns
// its perceptual hash.
func CalculateFramePerceptualHash(framePath string) (*goimagehash.ImageHash, error) {
	file, err := os.Open(framePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer func() { _ = file.Close() }()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}

	return hash, nil
}

// RotatedFrameHash extracts the midpoint frame of a video with the rotation
// filter applied and returns its perceptual hash. This is what a correctly
// rotated output's own midpoint frame should look like.
func RotatedFrameHash(ffmpegPath, videoFile string, r Rotation) (*goimagehash.ImageHash, error) {
	framePath, err := ExtractRotatedFrame(ffmpegPath, videoFile, r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(framePath) }()

	return CalculateFramePerceptualHash(framePath)
}

// MidpointFrameHash extracts an unfiltered midpoint frame and returns its
// perceptual hash.
func MidpointFrameHash(ffmpegPath, videoFile string) (*goimagehash.ImageHash, error) {
	framePath, err := ExtractMidpointFrame(ffmpegPath, videoFile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(framePath) }()

	return CalculateFramePerceptualHash(framePath)
}
