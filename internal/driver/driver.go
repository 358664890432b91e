// Package driver defines the contract shared by every file-format driver:
// traverse one file's content, feed each extracted fragment through the
// urlcheck pipeline, and accumulate deduplicated valid/invalid URL sets while
// reporting progress and honoring cooperative cancellation.
package driver

import "context"

// ProgressFunc receives a completion fraction in [0, 1]. Drivers invoke it
// synchronously from the scanning goroutine; the receiving side is
// responsible for any cross-thread handoff.
type ProgressFunc func(fraction float64)

// Limits bound how much of a file a driver will traverse. Zero values mean
// unlimited.
type Limits struct {
	// MaxSheetRows caps how many rows of each spreadsheet sheet are read.
	MaxSheetRows int
	// MaxSheetCols caps how many columns of each spreadsheet row are read.
	MaxSheetCols int
}

// Options carries per-scan collaborators into a driver. The zero value is
// usable: no progress reporting and no traversal limits.
type Options struct {
	Progress ProgressFunc
	Limits   Limits
}

// Driver is implemented by each file-format driver (tabular, spreadsheet,
// line text, markup).
type Driver interface {
	// Extensions returns the file extensions this driver handles,
	// including the leading dot.
	Extensions() []string

	// Scan traverses content and returns the accumulated results. When ctx
	// is canceled mid-traversal, Scan stops at the next outer-loop
	// iteration and returns whatever has accumulated so far with a nil
	// error; completed and canceled results are not distinguished here.
	Scan(ctx context.Context, filename string, content []byte, opts Options) (*Results, error)
}

// Canceled reports whether ctx is done. Drivers poll it once per outer-loop
// iteration (row, line, element) rather than per character, so cancellation
// latency is bounded by one iteration.
func Canceled(ctx context.Context) bool {
	return ctx.Err() != nil
}

// Reporter invokes a progress callback at the interval appropriate for the
// total item count, so reporting overhead stays roughly constant for any
// input size.
type Reporter struct {
	progress ProgressFunc
	total    int
	interval int
	done     int
}

// NewReporter creates a Reporter for total items. A nil progress function is
// allowed and makes every method a no-op.
func NewReporter(progress ProgressFunc, total int) *Reporter {
	return &Reporter{
		progress: progress,
		total:    total,
		interval: progressInterval(total),
	}
}

// Step records one processed item and reports the current fraction when the
// interval boundary is reached.
func (r *Reporter) Step() {
	r.done++
	if r.progress == nil || r.total == 0 {
		return
	}
	if r.done%r.interval == 0 {
		r.progress(float64(r.done) / float64(r.total))
	}
}

// Finish reports completion. Drivers call it when the stream is exhausted,
// not when a scan is canceled.
func (r *Reporter) Finish() {
	if r.progress != nil {
		r.progress(1.0)
	}
}

// progressInterval returns how many items to process between progress
// reports.
func progressInterval(total int) int {
	switch {
	case total < 100:
		return 5
	case total < 1_000:
		return 25
	case total < 10_000:
		return 100
	case total < 100_000:
		return 500
	default:
		return 1_000
	}
}
