// Package csvfile implements the tabular driver: every cell of a CSV file is
// a candidate fragment, gated through the classifier before validation.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/pmoretti/linksift/internal/driver"
	"github.com/pmoretti/linksift/internal/urlcheck"
)

// Driver implements driver.Driver for CSV files.
type Driver struct{}

// New creates a new CSV driver.
func New() *Driver {
	return &Driver{}
}

// Extensions returns the file extensions this driver handles.
func (*Driver) Extensions() []string {
	return []string{".csv"}
}

// Scan walks every cell row by row. The total item count for progress
// reporting is the number of cells, and cancellation is polled once per row.
func (*Driver) Scan(ctx context.Context, _ string, content []byte, opts driver.Options) (*driver.Results, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1 // ragged rows are common in exported data

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	total := 0
	for _, row := range records {
		total += len(row)
	}

	results := driver.NewResults()
	reporter := driver.NewReporter(opts.Progress, total)

	for rowIdx, row := range records {
		if driver.Canceled(ctx) {
			return results, nil
		}
		for colIdx, cell := range row {
			if fragment, ok := urlcheck.ParseCell(cell).Normalize(); ok {
				results.Check(fragment, fmt.Sprintf("row %d, column %d", rowIdx+1, colIdx+1))
			}
			reporter.Step()
		}
	}

	reporter.Finish()
	return results, nil
}

// init registers the CSV driver with the default registry.
func init() {
	driver.Register(New())
}
