package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/ffrotate/ui"
	"github.com/lepinkainen/ffrotate/utils"
	"github.com/lepinkainen/ffrotate/video"
)

// PreviewCmd extracts a single rotated frame from the temporal midpoint of a
// video, so the rotation can be checked before committing to a whole batch.
type PreviewCmd struct {
	File     string   `arg:"" name:"file" help:"Video file to preview" type:"existingfile"`
	Rotation string   `help:"Rotation to apply" default:"90" enum:"90,180,270,custom"`
	Angle    *float64 `help:"Rotation angle in degrees (clockwise), required for custom rotation"`
	Output   string   `help:"Where to write the preview image (default: <input>_preview.png)" short:"o"`
}

func (cmd *PreviewCmd) Run() error {
	ffmpegPath, err := utils.FFmpegPath()
	if err != nil {
		return err
	}

	rotation, err := video.ParseRotation(cmd.Rotation, cmd.Angle)
	if err != nil {
		return err
	}

	if !video.IsVideoFile(cmd.File) {
		return fmt.Errorf("%s is not a video file", cmd.File)
	}

	framePath, err := video.ExtractRotatedFrame(ffmpegPath, cmd.File, rotation)
	if err != nil {
		return fmt.Errorf("failed to generate preview: %w", err)
	}
	// The extractor hands ownership of the temp frame to us; remove it on
	// every exit path.
	defer func() { _ = os.Remove(framePath) }()

	output := cmd.Output
	if output == "" {
		ext := filepath.Ext(cmd.File)
		output = strings.TrimSuffix(cmd.File, ext) + "_preview.png"
	}

	if err := copyPreview(framePath, output); err != nil {
		return fmt.Errorf("failed to write preview image: %w", err)
	}

	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Preview written to %s", output)))
	return nil
}

func copyPreview(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
