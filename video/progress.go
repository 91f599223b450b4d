package video

import (
	"math"

	"github.com/schollz/progressbar/v3"
)

// ProgressSink receives batch progress as a fraction in [0,1]. Fractions are
// observed at item boundaries: before each item's work begins and once after
// the final item has been attempted. Observed values never decrease within
// one batch.
type ProgressSink interface {
	Observe(fraction float64)
}

// NoopSink discards progress updates.
type NoopSink struct{}

func (NoopSink) Observe(float64) {}

// ItemObserver may additionally be implemented by a ProgressSink to receive
// per-item lifecycle events as the batch runs.
type ItemObserver interface {
	ItemStarted(index int, inputPath string)
	ItemFinished(outcome Outcome)
}

// BarSink renders batch progress as a terminal progress bar, one tick per
// input file.
type BarSink struct {
	bar   *progressbar.ProgressBar
	total int
}

// NewBarSink creates a progress bar sized for a batch of totalItems files.
func NewBarSink(totalItems int) *BarSink {
	bar := progressbar.NewOptions(totalItems,
		progressbar.OptionSetDescription("Rotating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &BarSink{bar: bar, total: totalItems}
}

// Observe implements ProgressSink.
func (s *BarSink) Observe(fraction float64) {
	_ = s.bar.Set(int(math.Round(fraction * float64(s.total))))
}
