package cmd

import (
	"fmt"

	"github.com/lepinkainen/ffrotate/ui"
	"github.com/lepinkainen/ffrotate/utils"
	"github.com/lepinkainen/ffrotate/video"
)

// VerifyCmd checks a rotated output against its source using frame-based
// perceptual hashing: the midpoint frame of the rotated file should match the
// source's midpoint frame with the same rotation filter applied.
type VerifyCmd struct {
	Original  string   `arg:"" name:"original" help:"Source video file" type:"existingfile"`
	Rotated   string   `arg:"" name:"rotated" help:"Rotated output to verify" type:"existingfile"`
	Rotation  string   `help:"Rotation that was applied" default:"90" enum:"90,180,270,custom"`
	Angle     *float64 `help:"Rotation angle in degrees (clockwise), required for custom rotation"`
	Threshold int      `help:"Hamming distance threshold for similarity (0-64)" default:"10"`
}

// Run compares the expected rotated frame of the original against the actual
// midpoint frame of the rotated output (lower distance = more similar).
func (cmd *VerifyCmd) Run() error {
	// Both binaries are preconditions here: ffmpeg extracts the frames,
	// ffprobe backs the integrity check. Absence is fatal before any work.
	if err := utils.ValidateFFmpegDependencies(); err != nil {
		return err
	}

	ffmpegPath, err := utils.FFmpegPath()
	if err != nil {
		return err
	}
	ffprobePath, err := utils.FFprobePath()
	if err != nil {
		return err
	}

	rotation, err := video.ParseRotation(cmd.Rotation, cmd.Angle)
	if err != nil {
		return err
	}

	for _, f := range []string{cmd.Original, cmd.Rotated} {
		if !video.IsVideoFile(f) {
			return fmt.Errorf("%s is not a video file", f)
		}
		if err := video.ValidateVideoIntegrity(ffprobePath, f); err != nil {
			return fmt.Errorf("%s failed integrity check: %w", f, err)
		}
	}

	fmt.Printf("%s\n", ui.InfoStyle.Render(fmt.Sprintf("Comparing %s against rotated %s...", cmd.Rotated, cmd.Original)))

	expected, err := video.RotatedFrameHash(ffmpegPath, cmd.Original, rotation)
	if err != nil {
		return fmt.Errorf("failed to hash rotated source frame: %w", err)
	}

	actual, err := video.MidpointFrameHash(ffmpegPath, cmd.Rotated)
	if err != nil {
		return fmt.Errorf("failed to hash output frame: %w", err)
	}

	distance, err := expected.Distance(actual)
	if err != nil {
		return fmt.Errorf("failed to compare frames: %w", err)
	}

	if distance <= cmd.Threshold {
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Match (distance %d, threshold %d)", distance, cmd.Threshold)))
		return nil
	}

	fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Mismatch (distance %d, threshold %d)", distance, cmd.Threshold)))
	return fmt.Errorf("rotated output does not match the source rotation")
}
