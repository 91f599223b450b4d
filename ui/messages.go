package ui

// TUI Message Types emitted while a batch is running

// ItemStartedMsg is sent when the batch dispatches the next input file.
type ItemStartedMsg struct {
	Index    int
	Filename string
}

// ItemFinishedMsg is sent once per input with that item's result.
type ItemFinishedMsg struct {
	Filename   string
	OutputPath string
	Err        error
}

// BatchProgressMsg carries the overall batch fraction in [0,1].
type BatchProgressMsg struct {
	Fraction float64
}

// BatchDoneMsg is sent after every item has been attempted and outputs have
// been moved into place.
type BatchDoneMsg struct{}
