package ui

import "github.com/pmoretti/linksift/internal/driver"

// FileOutcome is the processing result for one file.
type FileOutcome struct {
	Err     error
	Path    string
	Results *driver.Results
}

// FilesFoundMsg is sent when candidate files have been discovered.
type FilesFoundMsg struct {
	Err   error
	Files []string
}

// ProgressMsg is sent while a file is being processed.
type ProgressMsg struct {
	Path     string
	Fraction float64
}

// FileProcessedMsg is sent when a single file has been fully processed.
type FileProcessedMsg struct {
	Outcome FileOutcome
}

// AllDoneMsg is sent when the whole pipeline has finished.
type AllDoneMsg struct{}
