package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmoretti/linksift/internal/config"
	"github.com/pmoretti/linksift/internal/driver"
	"github.com/pmoretti/linksift/internal/precheck"
	"github.com/pmoretti/linksift/internal/scanner"
)

// ScanFilesCmd returns a command that discovers the files to process. A
// regular file path is taken as-is; a directory is walked with the
// configured filters.
func ScanFilesCmd(path string, cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return FilesFoundMsg{Err: err}
		}
		if !info.IsDir() {
			return FilesFoundMsg{Files: []string{path}}
		}

		files, err := scanner.FindFilesWithOptions(scanner.Options{
			Root:       path,
			Extensions: driver.SupportedFileExtensions(),
			Include:    cfg.Scan.Include,
			Exclude:    cfg.Scan.Exclude,
		})
		return FilesFoundMsg{Files: files, Err: err}
	}
}

// PipelineState holds the channel and cancel handle for a running scan.
// This allows the commands to be stateless functions.
type PipelineState struct {
	Events     <-chan tea.Msg
	CancelFunc context.CancelFunc
}

// StartProcessingCmd launches the processing pipeline in a goroutine and
// returns the first event.
func StartProcessingCmd(files []string, cfg *config.Config, state *PipelineState) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		state.CancelFunc = cancel

		events := make(chan tea.Msg)
		state.Events = events
		go runPipeline(ctx, files, cfg, events)

		msg, ok := <-events
		if !ok {
			return AllDoneMsg{}
		}
		return msg
	}
}

// WaitForEventCmd waits for the next pipeline event.
func WaitForEventCmd(state *PipelineState) tea.Cmd {
	return func() tea.Msg {
		if state.Events == nil {
			return AllDoneMsg{}
		}
		msg, ok := <-state.Events
		if !ok {
			return AllDoneMsg{}
		}
		return msg
	}
}

// runPipeline processes the files one by one, delivering progress and
// per-file outcomes over the events channel. Sends race against ctx so a
// cancelled UI never leaves the goroutine blocked.
func runPipeline(ctx context.Context, files []string, cfg *config.Config, events chan<- tea.Msg) {
	defer close(events)

	limits := driver.Limits{
		MaxSheetRows: cfg.Limits.MaxSheetRows,
		MaxSheetCols: cfg.Limits.MaxSheetCols,
	}

	for _, path := range files {
		if ctx.Err() != nil {
			return
		}

		outcome := processOne(ctx, path, cfg.MaxFileSizeBytes(), limits, func(fraction float64) {
			select {
			case events <- ProgressMsg{Path: path, Fraction: fraction}:
			case <-ctx.Done():
			}
		})

		select {
		case events <- FileProcessedMsg{Outcome: outcome}:
		case <-ctx.Done():
			return
		}
	}
}

// processOne validates a single file through its driver.
func processOne(ctx context.Context, path string, maxSize int64, limits driver.Limits, progress driver.ProgressFunc) FileOutcome {
	file, err := precheck.Read(path, maxSize)
	if err != nil {
		return FileOutcome{Path: path, Err: err}
	}

	d, ok := driver.GetForFile(path)
	if !ok {
		return FileOutcome{Path: path, Err: fmt.Errorf("no driver for %s", path)}
	}

	results, err := d.Scan(ctx, path, file.Content, driver.Options{
		Progress: progress,
		Limits:   limits,
	})
	if err != nil {
		return FileOutcome{Path: path, Err: err}
	}
	return FileOutcome{Path: path, Results: results}
}
