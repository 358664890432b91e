// Package stats provides performance tracking for validation runs. It
// captures timing for the scan and process phases, memory usage, and
// throughput metrics.
package stats

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Stats holds performance metrics for a validation session.
type Stats struct {
	// Timing for each phase
	ScanStart    time.Time
	ScanEnd      time.Time
	ProcessStart time.Time
	ProcessEnd   time.Time

	// Counts
	FilesScanned     int
	FragmentsChecked int
	ValidURLs        int
	InvalidURLs      int

	// Memory stats (captured at end)
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	NumGoroutine int
}

// New creates a new Stats instance.
func New() *Stats {
	return &Stats{}
}

// StartScan marks the beginning of the file discovery phase.
func (s *Stats) StartScan() {
	s.ScanStart = time.Now()
}

// EndScan marks the end of the file discovery phase.
func (s *Stats) EndScan(filesFound int) {
	s.ScanEnd = time.Now()
	s.FilesScanned = filesFound
}

// StartProcess marks the beginning of the validation phase.
func (s *Stats) StartProcess() {
	s.ProcessStart = time.Now()
}

// EndProcess marks the end of the validation phase and captures memory
// stats.
func (s *Stats) EndProcess(fragments, valid, invalid int) {
	s.ProcessEnd = time.Now()
	s.FragmentsChecked = fragments
	s.ValidURLs = valid
	s.InvalidURLs = invalid
	s.captureMemoryStats()
}

// captureMemoryStats reads current memory statistics from runtime.
func (s *Stats) captureMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.HeapAlloc = m.HeapAlloc
	s.TotalAlloc = m.TotalAlloc
	s.NumGC = m.NumGC
	s.NumGoroutine = runtime.NumGoroutine()
}

// ScanDuration returns the time spent discovering files.
func (s *Stats) ScanDuration() time.Duration {
	if s.ScanEnd.IsZero() {
		return 0
	}
	return s.ScanEnd.Sub(s.ScanStart)
}

// ProcessDuration returns the time spent validating file contents.
func (s *Stats) ProcessDuration() time.Duration {
	if s.ProcessEnd.IsZero() {
		return 0
	}
	return s.ProcessEnd.Sub(s.ProcessStart)
}

// TotalDuration returns the total time from scan start to process end.
func (s *Stats) TotalDuration() time.Duration {
	if s.ProcessEnd.IsZero() {
		return 0
	}
	return s.ProcessEnd.Sub(s.ScanStart)
}

// FragmentsPerSecond returns the validation throughput.
func (s *Stats) FragmentsPerSecond() float64 {
	dur := s.ProcessDuration()
	if dur == 0 || s.FragmentsChecked == 0 {
		return 0
	}
	return float64(s.FragmentsChecked) / dur.Seconds()
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
}

// FormatBytes formats bytes for human-readable display.
func FormatBytes(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// String returns a formatted string representation of the stats.
func (s *Stats) String() string {
	var b strings.Builder

	total := s.TotalDuration()

	b.WriteString("\n=== Performance Statistics ===\n\n")

	b.WriteString("Timing:\n")
	b.WriteString(fmt.Sprintf("  Scan files:    %8s", FormatDuration(s.ScanDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.ScanDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Validate:      %8s", FormatDuration(s.ProcessDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.ProcessDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString("  ─────────────────────────\n")
	b.WriteString(fmt.Sprintf("  Total:         %8s\n", FormatDuration(total)))

	b.WriteString("\nThroughput:\n")
	b.WriteString(fmt.Sprintf("  Files scanned:     %5d\n", s.FilesScanned))
	b.WriteString(fmt.Sprintf("  Fragments checked: %5d\n", s.FragmentsChecked))
	b.WriteString(fmt.Sprintf("  Valid URLs:        %5d\n", s.ValidURLs))
	b.WriteString(fmt.Sprintf("  Invalid URLs:      %5d\n", s.InvalidURLs))
	b.WriteString(fmt.Sprintf("  Fragments/second:  %5.1f\n", s.FragmentsPerSecond()))

	b.WriteString("\nMemory:\n")
	b.WriteString(fmt.Sprintf("  Heap in use:   %8s\n", FormatBytes(s.HeapAlloc)))
	b.WriteString(fmt.Sprintf("  Total alloc:   %8s\n", FormatBytes(s.TotalAlloc)))
	b.WriteString(fmt.Sprintf("  GC cycles:     %8d\n", s.NumGC))
	b.WriteString(fmt.Sprintf("  Goroutines:    %8d\n", s.NumGoroutine))

	return b.String()
}
