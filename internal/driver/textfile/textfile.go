// Package textfile implements the line-oriented driver: each line of a plain
// text file is a candidate fragment, gated through the classifier before
// validation.
package textfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmoretti/linksift/internal/driver"
	"github.com/pmoretti/linksift/internal/urlcheck"
)

// Driver implements driver.Driver for plain text files.
type Driver struct{}

// New creates a new text driver.
func New() *Driver {
	return &Driver{}
}

// Extensions returns the file extensions this driver handles.
func (*Driver) Extensions() []string {
	return []string{".txt", ".log"}
}

// Scan checks one fragment per line. Blank lines are skipped but still count
// toward progress, and cancellation is polled once per line.
func (*Driver) Scan(ctx context.Context, _ string, content []byte, opts driver.Options) (*driver.Results, error) {
	lines := strings.Split(string(content), "\n")

	results := driver.NewResults()
	reporter := driver.NewReporter(opts.Progress, len(lines))

	for i, line := range lines {
		if driver.Canceled(ctx) {
			return results, nil
		}
		line = strings.TrimSuffix(line, "\r")
		if fragment, ok := urlcheck.TextValue(line).Normalize(); ok {
			results.Check(fragment, fmt.Sprintf("line %d", i+1))
		}
		reporter.Step()
	}

	reporter.Finish()
	return results, nil
}

// init registers the text driver with the default registry.
func init() {
	driver.Register(New())
}
