package video

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

var (
	// ErrEmptyBatch is returned when a batch is submitted with no inputs.
	ErrEmptyBatch = errors.New("no input files in batch")

	// ErrMissingAngle is returned when custom rotation is selected without
	// an angle.
	ErrMissingAngle = errors.New("custom rotation selected but no angle supplied")

	// ErrNoOutputDirectory is returned when no output directory is given.
	ErrNoOutputDirectory = errors.New("no output directory specified")
)

// batchJob tracks one in-flight batch. It is owned exclusively by RotateBatch
// for the duration of the call; progress only ever increases.
type batchJob struct {
	requests []RotationRequest
	progress float64
	sink     ProgressSink
}

func (j *batchJob) observe(fraction float64) {
	if fraction > j.progress {
		j.progress = fraction
	}
	j.sink.Observe(j.progress)
}

// RotateBatch rotates every input sequentially and returns one Outcome per
// input, in input order. Validation problems and an unresolvable ffmpeg
// binary abort the whole batch before any file is touched; a single item's
// failure is recorded in its Outcome and the batch continues.
//
// Items are transcoded into a staging directory and only moved into
// outputDir once every item has been attempted. The staging directory is
// removed when the call returns, success or failure.
func RotateBatch(inputs []string, r Rotation, outputDir string, opts *RotateOptions, sink ProgressSink) ([]Outcome, error) {
	if opts == nil {
		opts = DefaultRotateOptions()
	}
	if sink == nil {
		sink = NoopSink{}
	}

	// Job-level validation, before any filesystem writes.
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}
	if outputDir == "" {
		return nil, ErrNoOutputDirectory
	}
	if r.Mode == RotateCustom && math.IsNaN(r.Angle) {
		return nil, ErrMissingAngle
	}
	if _, err := RotationFilter(r); err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(opts.FFmpegPath); err != nil {
		return nil, fmt.Errorf("ffmpeg not available: %w", err)
	}
	if err := EnsureOutputDir(outputDir); err != nil {
		return nil, err
	}

	staging, err := os.MkdirTemp("", "ffrotate-staging-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	// Each item stages into its own subdirectory so that inputs deriving the
	// same output name cannot clobber each other before finalization.
	job := &batchJob{sink: sink}
	for i, input := range inputs {
		itemDir := filepath.Join(staging, strconv.Itoa(i))
		if err := os.Mkdir(itemDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create staging directory: %w", err)
		}
		job.requests = append(job.requests, RotationRequest{
			InputPath:  input,
			Rotation:   r,
			OutputPath: ResolveOutputPath(input, itemDir, opts.Suffix),
		})
	}

	itemObs, _ := sink.(ItemObserver)

	total := float64(len(job.requests))
	outcomes := make([]Outcome, 0, len(job.requests))

	for i, req := range job.requests {
		job.observe(float64(i) / total)
		if itemObs != nil {
			itemObs.ItemStarted(i, req.InputPath)
		}

		outcome := RotateVideo(req, opts)
		outcomes = append(outcomes, outcome)

		if itemObs != nil {
			itemObs.ItemFinished(outcome)
		}
	}
	job.observe(1)

	// Finalization: relocate staged outputs under their resolved final
	// names. A failed move demotes that item to a failure; the rest of the
	// batch is unaffected.
	for i := range outcomes {
		if outcomes[i].Failed() {
			continue
		}
		final := filepath.Join(outputDir, filepath.Base(outcomes[i].OutputPath))
		if err := moveFile(outcomes[i].OutputPath, final); err != nil {
			outcomes[i].OutputPath = ""
			outcomes[i].Err = fmt.Errorf("failed to move output into place: %w", err)
			continue
		}
		outcomes[i].OutputPath = final
	}

	return outcomes, nil
}

// moveFile renames src to dst, falling back to copy-and-delete when the
// staging directory and the output directory are on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	return copyFile(src, dst)
}

func copyFile(src, dst string) error {
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
	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
