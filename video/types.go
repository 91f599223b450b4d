package video

import (
	"math"
	"time"
)

// RotationMode selects the pixel transformation applied to a video.
type RotationMode int

const (
	Rotate90  RotationMode = iota // 90° clockwise
	Rotate180                     // exact 180° flip
	Rotate270                     // 90° counter-clockwise
	RotateCustom
)

// Rotation pairs a mode with the angle used by RotateCustom. The angle is in
// degrees, clockwise. For the three fixed modes the angle is ignored; for
// RotateCustom a NaN angle means "not supplied".
type Rotation struct {
	Mode  RotationMode
	Angle float64
}

// ParseRotation converts the CLI rotation selection into a Rotation value.
// angle may be nil for the fixed modes; a missing or non-finite angle for
// custom mode is caught later by batch validation and the filter resolver.
func ParseRotation(mode string, angle *float64) (Rotation, error) {
	switch mode {
	case "90":
		return Rotation{Mode: Rotate90}, nil
	case "180":
		return Rotation{Mode: Rotate180}, nil
	case "270":
		return Rotation{Mode: Rotate270}, nil
	case "custom":
		if angle == nil {
			return Rotation{Mode: RotateCustom, Angle: math.NaN()}, nil
		}
		return Rotation{Mode: RotateCustom, Angle: *angle}, nil
	}
	return Rotation{}, ErrUnknownRotation
}

// RotationRequest describes one rotation of one input file. Requests are
// created per batch item and consumed once by RotateVideo.
type RotationRequest struct {
	InputPath  string
	Rotation   Rotation
	OutputPath string
}

// Outcome is the per-item result of one rotation attempt: either a produced
// output path or an error. A failed item never aborts the batch.
type Outcome struct {
	InputPath  string
	OutputPath string
	Err        error
}

// Failed reports whether the item's rotation did not produce an output.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// RotateOptions holds the transcoder configuration for a batch
type RotateOptions struct {
	FFmpegPath  string        // transcoder binary, resolved before the batch starts
	Codec       string        // output video codec
	CRF         int           // constant rate factor (0 = mathematically lossless for transpositions)
	Preset      string        // x264 preset
	Suffix      string        // inserted before the extension in output names
	SettleDelay time.Duration // wait after process exit before the output is moved
}

// DefaultRotateOptions returns the lossless-transposition encode settings.
// CRF 0 makes quality exact for the fixed modes, so the fastest preset is
// used: the only cost of speed here is file size.
func DefaultRotateOptions() *RotateOptions {
	return &RotateOptions{
		FFmpegPath:  "ffmpeg",
		Codec:       "libx264",
		CRF:         0,
		Preset:      "ultrafast",
		Suffix:      "_rotated",
		SettleDelay: time.Second,
	}
}
