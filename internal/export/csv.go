package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVFormatter formats reports as a Status/Location/URL table: a header
// row, one summary row with the aggregate counts, then one row per URL.
type CSVFormatter struct{}

// Format implements Formatter.
func (*CSVFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Status", "Location", "URL"},
		{
			"SUMMARY",
			fmt.Sprintf("Valid: %d", report.Summary.Valid),
			fmt.Sprintf("Invalid: %d", report.Summary.Invalid),
		},
	}

	for _, file := range report.Files {
		for _, url := range file.Valid {
			rows = append(rows, []string{"Valid", file.Path, url})
		}
		for _, entry := range file.Invalid {
			location := entry.Location
			if location == "" {
				location = file.Path
			} else {
				location = fmt.Sprintf("%s (%s)", file.Path, entry.Location)
			}
			rows = append(rows, []string{"Invalid", location, entry.URL})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
