package video

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// buildRotateArgs constructs the full ffmpeg argument list for one rotation.
func buildRotateArgs(req RotationRequest, filter string, opts *RotateOptions) []string {
	return []string{
		"-y",
		"-i", req.InputPath,
		"-vf", filter,
		"-c:v", opts.Codec,
		"-crf", strconv.Itoa(opts.CRF),
		"-preset", opts.Preset,
		req.OutputPath,
	}
}

// RotateVideo runs the transcoder to completion for one request and reports
// the result as an Outcome. Errors are carried as data on the Outcome, never
// returned, so a single bad file cannot abort a batch.
func RotateVideo(req RotationRequest, opts *RotateOptions) Outcome {
	outcome := Outcome{InputPath: req.InputPath}

	filter, err := RotationFilter(req.Rotation)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	cmd := exec.Command(opts.FFmpegPath, buildRotateArgs(req, filter, opts)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		outcome.Err = fmt.Errorf("ffmpeg failed: %s", diagnosticMessage(stderr.String(), err))
		return outcome
	}

	// Some filesystems report the file before the last write has flushed.
	// Wait before anything downstream moves it.
	if opts.SettleDelay > 0 {
		time.Sleep(opts.SettleDelay)
	}

	if _, err := os.Stat(req.OutputPath); err != nil {
		outcome.Err = fmt.Errorf("ffmpeg exited cleanly but produced no output: %w", err)
		return outcome
	}

	outcome.OutputPath = req.OutputPath
	return outcome
}

// diagnosticMessage prefers the transcoder's stderr text over the bare Go
// exec error, which usually only says "exit status 1".
func diagnosticMessage(stderr string, err error) string {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return msg
	}
	return err.Error()
}
