package cmd

import (
	"fmt"

	"github.com/pmoretti/linksift/internal/export"
	"github.com/pmoretti/linksift/internal/helpers"
)

// maxDisplayURL bounds URL width in plain text output.
const maxDisplayURL = 80

// printScanResults writes the plain text report to stdout: one section per
// file, invalid URLs with their locations first, then the valid ones.
func printScanResults(outcomes []fileOutcome) {
	for _, o := range outcomes {
		fmt.Printf("\n=== %s ===\n", o.path)

		if o.err != nil {
			fmt.Printf("  [SKIPPED] %v\n", o.err)
			continue
		}

		details := o.results.InvalidDetails()
		for _, d := range details {
			fmt.Printf("  [INVALID] %s\n", helpers.TruncateURL(d.URL, maxDisplayURL))
			fmt.Printf("            Location: %s\n", d.Location)
		}

		for _, url := range o.results.Valid() {
			fmt.Printf("  [VALID]   %s\n", helpers.TruncateURL(url, maxDisplayURL))
		}

		if o.results.Total() == 0 {
			fmt.Println("  No URLs found.")
		}
	}
}

// printSummaryLine writes the aggregate counts.
func printSummaryLine(summary export.Summary) {
	fmt.Printf("\nSummary: %d %s scanned | %d valid | %d invalid\n",
		summary.FilesScanned,
		helpers.Pluralize(summary.FilesScanned, "file", "files"),
		summary.Valid,
		summary.Invalid)
}
