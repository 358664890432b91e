// Package export provides formatting and file writing for validation
// reports.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Format represents an output format type.
type Format string

const (
	// FormatCSV outputs the classic Status/Location/URL table.
	FormatCSV Format = "csv"
	// FormatJSON outputs as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs as YAML.
	FormatYAML Format = "yaml"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCSV),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// IsValidFormat checks if a format string is valid.
func IsValidFormat(s string) bool {
	switch Format(strings.ToLower(s)) {
	case FormatCSV, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// InvalidEntry is one invalid URL with the location it was first seen at.
type InvalidEntry struct {
	URL      string
	Location string
}

// FileResult holds the validation outcome for a single file.
type FileResult struct {
	Path    string
	Valid   []string
	Invalid []InvalidEntry
}

// Summary aggregates counts across all files in a report.
type Summary struct {
	FilesScanned int
	Valid        int
	Invalid      int
}

// Report contains all data needed for output formatting.
type Report struct {
	GeneratedAt time.Time
	Duration    time.Duration
	Files       []FileResult
	Summary     Summary
}

// Formatter is the interface that output formatters implement.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// GetFormatter returns the appropriate formatter for a format.
func GetFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatCSV:
		return &CSVFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// FormatReport formats a report using the specified format.
func FormatReport(report *Report, format Format) ([]byte, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	return formatter.Format(report)
}

// InferFormat determines the output format from a filename extension.
func InferFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(
			"cannot infer format from extension %q (supported: .csv, .json, .yaml, .yml)",
			ext,
		)
	}
}

// WriteToFile writes a formatted report to a file, inferring the format
// from the filename extension.
func WriteToFile(report *Report, filename string) error {
	format, err := InferFormat(filename)
	if err != nil {
		return err
	}

	data, err := FormatReport(report, format)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
