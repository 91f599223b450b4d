package video

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAngle is returned when a custom rotation carries a
	// non-finite angle.
	ErrInvalidAngle = errors.New("custom rotation requires a finite angle")

	// ErrUnknownRotation is returned for a rotation selection outside
	// {90, 180, 270, custom}.
	ErrUnknownRotation = errors.New("unknown rotation, expected 90, 180, 270 or custom")
)

// RotationFilter maps a rotation to the ffmpeg -vf expression that performs
// it. The three fixed modes are pure transpositions: 180° is expressed as two
// chained 90° transposes of the same index, which compose to an exact flip
// through two lossless integer operations instead of an interpolated
// rotation. Custom angles use the generic rotate filter with bilinear
// interpolation disabled and are NOT lossless: arbitrary-angle rotation
// requires resampling.
func RotationFilter(r Rotation) (string, error) {
	switch r.Mode {
	case Rotate90:
		return "transpose=1", nil
	case Rotate180:
		return "transpose=2,transpose=2", nil
	case Rotate270:
		return "transpose=2", nil
	case RotateCustom:
		if math.IsNaN(r.Angle) || math.IsInf(r.Angle, 0) {
			return "", ErrInvalidAngle
		}
		return fmt.Sprintf("rotate=%g*(PI/180):bilinear=0", r.Angle), nil
	}
	return "", ErrUnknownRotation
}
