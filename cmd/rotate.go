package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/ffrotate/types"
	"github.com/lepinkainen/ffrotate/ui"
	"github.com/lepinkainen/ffrotate/utils"
	"github.com/lepinkainen/ffrotate/video"
)

type RotateCmd struct {
	Files    []string `arg:"" name:"files" help:"Video files or directories to rotate" type:"path"`
	Rotation string   `help:"Rotation to apply" default:"90" enum:"90,180,270,custom"`
	Angle    *float64 `help:"Rotation angle in degrees (clockwise), required for custom rotation"`
	Output   string   `help:"Output directory for rotated files (created if missing)" short:"o"`
	TUI      bool     `help:"Show interactive progress UI"`
}

func (cmd *RotateCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	// ffmpeg availability is a job-level check, done once before any work
	ffmpegPath, err := utils.FFmpegPath()
	if err != nil {
		return err
	}

	rotation, err := video.ParseRotation(cmd.Rotation, cmd.Angle)
	if err != nil {
		return err
	}

	outputDir := cmd.Output
	if outputDir == "" {
		outputDir = utils.DefaultOutputDir()
	}

	files, err := cmd.expandDirectories()
	if err != nil {
		return fmt.Errorf("failed to expand directories: %w", err)
	}

	opts := video.DefaultRotateOptions()
	opts.FFmpegPath = ffmpegPath

	if utils.IsNetworkDrive(outputDir) {
		// Network filesystems flush slower; give outputs longer to settle
		// before they are moved into place.
		opts.SettleDelay = 3 * time.Second
		fmt.Printf("⚠️  Network output directory detected, using a longer settle delay\n")
	}

	if cmd.TUI && len(files) > 1 {
		return runWithTUI(files, rotation, outputDir, opts, version)
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("FFrotate %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Rotating %d files by %s into %s:", len(files), cmd.Rotation, outputDir)))

	outcomes, err := video.RotateBatch(files, rotation, outputDir, opts, video.NewBarSink(len(files)))
	if err != nil {
		return err
	}

	printSummary(outcomes)
	return nil
}

// batchResult carries a finished batch out of its goroutine.
type batchResult struct {
	outcomes []video.Outcome
	err      error
}

// runWithTUI runs the batch behind a bubbletea progress display. An in-flight
// batch cannot be cancelled, so quitting the display early only detaches the
// UI: the batch result is always waited for before returning.
func runWithTUI(files []string, rotation video.Rotation, outputDir string, opts *video.RotateOptions, version string, progOpts ...tea.ProgramOption) error {
	model := ui.NewRotateModel(len(files), version)
	p := tea.NewProgram(model, progOpts...)

	resultCh := make(chan batchResult, 1)

	go func() {
		outcomes, err := video.RotateBatch(files, rotation, outputDir, opts, &tuiSink{program: p})
		resultCh <- batchResult{outcomes: outcomes, err: err}
		p.Send(ui.BatchDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}

	result := <-resultCh
	if result.err != nil {
		return result.err
	}

	printSummary(result.outcomes)
	return nil
}

// printSummary renders one line per outcome plus totals.
func printSummary(outcomes []video.Outcome) {
	var succeeded, failed int

	for _, outcome := range outcomes {
		if outcome.Failed() {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %v", outcome.InputPath, outcome.Err)))
			failed++
			continue
		}
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s → %s", outcome.InputPath, outcome.OutputPath)))
		succeeded++
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("✅ Rotated: %d, ❌ Failed: %d", succeeded, failed)))
}

// expandDirectories expands any directory arguments into lists of video files
func (cmd *RotateCmd) expandDirectories() ([]string, error) {
	var expandedFiles []string

	for _, path := range cmd.Files {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}

		if fi.IsDir() {
			videoFiles, err := video.FindVideoFilesRecursively(path)
			if err != nil {
				return nil, fmt.Errorf("failed to scan directory %s: %w", path, err)
			}
			expandedFiles = append(expandedFiles, videoFiles...)
		} else {
			expandedFiles = append(expandedFiles, path)
		}
	}

	return expandedFiles, nil
}

// tuiSink bridges the batch's progress sink to bubbletea messages.
type tuiSink struct {
	program *tea.Program
}

func (s *tuiSink) Observe(fraction float64) {
	s.program.Send(ui.BatchProgressMsg{Fraction: fraction})
}

func (s *tuiSink) ItemStarted(index int, inputPath string) {
	s.program.Send(ui.ItemStartedMsg{Index: index, Filename: inputPath})
}

func (s *tuiSink) ItemFinished(outcome video.Outcome) {
	s.program.Send(ui.ItemFinishedMsg{
		Filename:   outcome.InputPath,
		OutputPath: outcome.OutputPath,
		Err:        outcome.Err,
	})
}
