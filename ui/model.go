package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// FileLogEntry is one row in the processed files list
type FileLogEntry struct {
	OriginalName string
	OutputPath   string
	Error        string
}

func (f FileLogEntry) FilterValue() string { return f.OriginalName }
func (f FileLogEntry) Title() string       { return filepath.Base(f.OriginalName) }
func (f FileLogEntry) Description() string {
	if f.Error != "" {
		return fmt.Sprintf("❌ %s", f.Error)
	}
	if f.OutputPath != "" {
		return fmt.Sprintf("✓ → %s", f.OutputPath)
	}
	return "🔄 Rotating..."
}

// RotateModel is the TUI model for a running rotation batch. The batch is
// strictly sequential, so there is a single current file plus the overall
// progress bar and the per-file result log.
type RotateModel struct {
	// Batch state
	totalFiles  int
	currentFile string
	fraction    float64
	fileEntries []FileLogEntry
	done        bool

	// UI components
	overallProgress progress.Model
	fileList        list.Model

	// Layout
	width  int
	height int

	quitting bool

	// Version for display
	Version string
}

// NewRotateModel creates a TUI model for a batch of numFiles inputs.
func NewRotateModel(numFiles int, version string) RotateModel {
	overallProg := progress.New(progress.WithDefaultGradient())

	fileItems := []list.Item{}
	fileList := list.New(fileItems, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Rotated Files"

	return RotateModel{
		totalFiles:      numFiles,
		overallProgress: overallProg,
		fileList:        fileList,
		Version:         version,
	}
}

// Init implements tea.Model
func (m RotateModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m RotateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// The in-flight ffmpeg process cannot be aborted; quitting only
			// stops the display.
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width-4, msg.Height/2)

	case ItemStartedMsg:
		m.currentFile = msg.Filename

	case ItemFinishedMsg:
		entry := FileLogEntry{
			OriginalName: msg.Filename,
			OutputPath:   msg.OutputPath,
		}
		if msg.Err != nil {
			entry.Error = msg.Err.Error()
		}

		m.fileEntries = append(m.fileEntries, entry)
		items := make([]list.Item, len(m.fileEntries))
		for i, entry := range m.fileEntries {
			items[i] = entry
		}
		m.fileList.SetItems(items)
		m.currentFile = ""

	case BatchProgressMsg:
		m.fraction = msg.Fraction

	case BatchDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m RotateModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Header
	header := HeaderStyle.Render(fmt.Sprintf("FFrotate %s", m.Version))

	// Overall progress
	overallView := fmt.Sprintf("Overall Progress: %s (%d/%d)",
		m.overallProgress.ViewAs(m.fraction),
		len(m.fileEntries),
		m.totalFiles)

	// Current file
	current := "Waiting..."
	if m.currentFile != "" {
		current = fmt.Sprintf("Rotating: %s", filepath.Base(m.currentFile))
	} else if m.done {
		current = "All files processed"
	}

	// File list
	fileListView := m.fileList.View()

	// Controls
	controls := "Controls: [q] Quit display (batch keeps running)"

	sections := []string{
		header,
		overallView,
		ProcessingStyle.Render(current),
		fileListView,
		controls,
	}

	return strings.Join(sections, "\n\n")
}
