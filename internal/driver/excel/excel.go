// Package excel implements the spreadsheet driver: every cell of every sheet
// in an XLSX workbook is a candidate fragment, gated through the classifier
// before validation. Sheets are read through excelize, which hands numeric
// cells back as decimal strings; the urlcheck value coercion turns
// whole-number floats back into their integer form before classification.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pmoretti/linksift/internal/driver"
	"github.com/pmoretti/linksift/internal/urlcheck"
)

// Driver implements driver.Driver for XLSX workbooks.
type Driver struct{}

// New creates a new spreadsheet driver.
func New() *Driver {
	return &Driver{}
}

// Extensions returns the file extensions this driver handles. Legacy binary
// .xls workbooks are not supported.
func (*Driver) Extensions() []string {
	return []string{".xlsx", ".xlsm"}
}

// sheetData is one sheet's rows after the row/column limits are applied.
type sheetData struct {
	name string
	rows [][]string
}

// Scan walks every sheet cell by cell. Rows and columns beyond the
// configured limits are ignored, the total item count for progress is the
// number of in-limit cells across all sheets, and cancellation is polled
// once per row.
func (*Driver) Scan(ctx context.Context, _ string, content []byte, opts driver.Options) (*driver.Results, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets, total, err := loadSheets(f, opts.Limits)
	if err != nil {
		return nil, err
	}

	results := driver.NewResults()
	reporter := driver.NewReporter(opts.Progress, total)

	for _, sheet := range sheets {
		for rowIdx, row := range sheet.rows {
			if driver.Canceled(ctx) {
				return results, nil
			}
			for colIdx, cell := range row {
				if fragment, ok := urlcheck.ParseCell(cell).Normalize(); ok {
					results.Check(fragment, cellLocation(sheet.name, colIdx+1, rowIdx+1))
				}
				reporter.Step()
			}
		}
	}

	reporter.Finish()
	return results, nil
}

// loadSheets reads all sheets up front, applies the traversal limits, and
// returns the in-limit cell count so the progress interval can be computed
// before processing starts.
func loadSheets(f *excelize.File, limits driver.Limits) ([]sheetData, int, error) {
	var sheets []sheetData
	total := 0

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, 0, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		if limits.MaxSheetRows > 0 && len(rows) > limits.MaxSheetRows {
			rows = rows[:limits.MaxSheetRows]
		}
		for i, row := range rows {
			if limits.MaxSheetCols > 0 && len(row) > limits.MaxSheetCols {
				rows[i] = row[:limits.MaxSheetCols]
			}
			total += len(rows[i])
		}
		sheets = append(sheets, sheetData{name: name, rows: rows})
	}

	return sheets, total, nil
}

// cellLocation formats a cell reference like `sheet "Data", cell B3`.
func cellLocation(sheet string, col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		name = fmt.Sprintf("(%d,%d)", col, row)
	}
	return fmt.Sprintf("sheet %q, cell %s", sheet, name)
}

// init registers the spreadsheet driver with the default registry.
func init() {
	driver.Register(New())
}
