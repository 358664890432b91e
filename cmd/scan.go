package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmoretti/linksift/internal/config"
	"github.com/pmoretti/linksift/internal/driver"
	"github.com/pmoretti/linksift/internal/export"
	"github.com/pmoretti/linksift/internal/precheck"
	"github.com/pmoretti/linksift/internal/scanner"
	"github.com/pmoretti/linksift/internal/stats"
)

// Flag variables for the scan command.
var (
	outputFormat string
	outputFile   string
	fileTypes    []string
	includeGlobs []string
	excludeGlobs []string
	showStats    bool
	verbose      bool
	noConfig     bool
	maxSizeMB    int
)

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Validate URLs found in files",
	Long: `Scan a file or directory and validate every URL-like string.

If the path is a directory, all supported files inside it are
processed; hidden directories are skipped. If no path is provided,
the current directory is scanned.

Cell and line contents pass through a URL-likeness check before
strict validation, so ordinary prose is ignored. In HTML and
Markdown files the extracted link targets are validated directly.

Exit codes:
  0 - No invalid URLs found
  1 - Invalid URLs or processing errors found

Examples:
  linksift scan links.csv            # Validate a single file
  linksift scan ./docs               # Scan a directory
  linksift scan --types=csv,xlsx     # Restrict the file types
  linksift scan --format=json        # Output JSON to stdout
  linksift scan --output=report.csv  # Write a CSV report to a file
  linksift scan --exclude="vendor/**"
  linksift scan --stats              # Show performance statistics

Note: --format and --output are mutually exclusive.

Config file (.linksiftrc.yaml or .linksiftrc.toml):
  limits:
    max_file_size_mb: 100
    max_sheet_rows: 50000
    max_sheet_cols: 200
  scan:
    exclude: ["vendor/**"]`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&outputFormat, "format", "f", "",
		"Output format for stdout: csv, json, yaml")
	scanCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Write report to file (format inferred from extension: .csv, .json, .yaml)")

	scanCmd.Flags().StringSliceVarP(&fileTypes, "types", "T", nil,
		"File types to scan (comma-separated, e.g. csv,xlsx,html); default is all supported")
	scanCmd.Flags().StringSliceVar(&includeGlobs, "include", nil,
		"Glob patterns to include (can be repeated)")
	scanCmd.Flags().StringSliceVar(&excludeGlobs, "exclude", nil,
		"Glob patterns to exclude (can be repeated)")

	scanCmd.Flags().BoolVar(&showStats, "stats", false,
		"Show detailed performance statistics")
	scanCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	scanCmd.Flags().BoolVar(&noConfig, "no-config", false,
		"Skip loading the .linksiftrc config file")
	scanCmd.Flags().IntVar(&maxSizeMB, "max-size", 0,
		"Maximum file size in MB (overrides config)")
}

// fileOutcome is the processing result for one file.
type fileOutcome struct {
	path    string
	results *driver.Results
	err     error
}

// runScan is the main entry point for the scan command.
func runScan(_ *cobra.Command, args []string) {
	setupLogging()
	exitOnError(validateScanFlags(), "Invalid flags")

	cfg, err := loadConfig(noConfig)
	exitOnError(err, "Invalid configuration")
	applyFlagOverrides(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	perf := stats.New()
	quiet := outputFormat != ""

	// Phase 1: discover files
	files := discoverFiles(getPathArg(args), cfg, perf, quiet)

	// Phase 2: validate file contents
	outcomes := processFiles(ctx, files, cfg, perf)

	// Phase 3: report
	report := buildReport(outcomes, perf)
	routeOutput(report, outcomes, perf, quiet)

	if hasFailures(outcomes) {
		os.Exit(1)
	}
}

// setupLogging installs a stderr slog handler, at debug level when
// --verbose is set.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// validateScanFlags checks for invalid flag combinations.
func validateScanFlags() error {
	if outputFormat != "" && outputFile != "" {
		return errors.New("--format and --output are mutually exclusive; " +
			"use --format for stdout output, or --output for file output")
	}
	if outputFormat != "" && !export.IsValidFormat(outputFormat) {
		return fmt.Errorf("invalid format %q; valid formats: %s",
			outputFormat, strings.Join(export.ValidFormats(), ", "))
	}
	if maxSizeMB < 0 {
		return fmt.Errorf("--max-size must be positive, got %d", maxSizeMB)
	}
	return nil
}

// applyFlagOverrides merges CLI flags into the loaded config. Globs are
// additive; --max-size replaces the configured limit.
func applyFlagOverrides(cfg *config.Config) {
	if maxSizeMB > 0 {
		cfg.Limits.MaxFileSizeMB = maxSizeMB
	}
	cfg.Scan.Include = append(cfg.Scan.Include, includeGlobs...)
	cfg.Scan.Exclude = append(cfg.Scan.Exclude, excludeGlobs...)
}

// discoverFiles resolves the path argument to the list of files to process.
// A regular file is taken as-is; a directory is walked with the configured
// filters.
func discoverFiles(path string, cfg *config.Config, perf *stats.Stats, quiet bool) []string {
	perf.StartScan()

	info, err := os.Stat(path)
	exitOnError(err, "Cannot access path")

	var files []string
	if info.IsDir() {
		extensions := driver.SupportedFileExtensions()
		if len(fileTypes) > 0 {
			exitOnError(validateFileTypes(fileTypes), "Invalid file types")
			extensions, err = driver.DefaultRegistry().ExtensionsForTypes(fileTypes)
			exitOnError(err, "Invalid file types")
		}
		files, err = scanner.FindFilesWithOptions(scanner.Options{
			Root:       path,
			Extensions: extensions,
			Include:    cfg.Scan.Include,
			Exclude:    cfg.Scan.Exclude,
		})
		exitOnError(err, "Error scanning directory")
	} else {
		files = []string{path}
	}
	perf.EndScan(len(files))

	if !quiet {
		fmt.Printf("Found %d file(s)\n", len(files))
	}
	return files
}

// processFiles runs every file through its driver. Precondition failures
// and missing drivers are recorded per file, not fatal. Interrupt stops the
// loop; already accumulated outcomes are kept.
func processFiles(ctx context.Context, files []string, cfg *config.Config, perf *stats.Stats) []fileOutcome {
	perf.StartProcess()

	limits := driver.Limits{
		MaxSheetRows: cfg.Limits.MaxSheetRows,
		MaxSheetCols: cfg.Limits.MaxSheetCols,
	}

	outcomes := make([]fileOutcome, 0, len(files))
	fragments, valid, invalid := 0, 0, 0

	for _, path := range files {
		if driver.Canceled(ctx) {
			slog.Debug("scan interrupted", "remaining", len(files)-len(outcomes))
			break
		}

		outcome := processFile(ctx, path, cfg.MaxFileSizeBytes(), limits)
		if outcome.results != nil {
			fragments += outcome.results.Total()
			valid += outcome.results.ValidCount()
			invalid += outcome.results.InvalidCount()
		}
		outcomes = append(outcomes, outcome)
	}

	perf.EndProcess(fragments, valid, invalid)
	return outcomes
}

// processFile validates one file: precondition checks, driver lookup, scan.
func processFile(ctx context.Context, path string, maxSize int64, limits driver.Limits) fileOutcome {
	start := time.Now()

	file, err := precheck.Read(path, maxSize)
	if err != nil {
		return fileOutcome{path: path, err: err}
	}
	if file.Encoding != "" && file.Encoding != precheck.EncodingUTF8 {
		slog.Debug("decoded with fallback encoding", "file", path, "encoding", file.Encoding)
	}

	d, ok := driver.GetForFile(path)
	if !ok {
		return fileOutcome{path: path, err: fmt.Errorf("no driver for %s", path)}
	}

	results, err := d.Scan(ctx, path, file.Content, driver.Options{Limits: limits})
	if err != nil {
		return fileOutcome{path: path, err: fmt.Errorf("scanning %s: %w", path, err)}
	}

	slog.Debug("file processed",
		"file", path,
		"valid", results.ValidCount(),
		"invalid", results.InvalidCount(),
		"duration", time.Since(start))
	return fileOutcome{path: path, results: results}
}

// buildReport converts outcomes into an export.Report. Failed files appear
// with their error as a single invalid entry so reports never silently drop
// a file.
func buildReport(outcomes []fileOutcome, perf *stats.Stats) *export.Report {
	report := &export.Report{
		GeneratedAt: time.Now(),
		Duration:    perf.TotalDuration(),
		Summary: export.Summary{
			FilesScanned: perf.FilesScanned,
			Valid:        perf.ValidURLs,
			Invalid:      perf.InvalidURLs,
		},
	}

	for _, o := range outcomes {
		fr := export.FileResult{Path: o.path}
		if o.err != nil {
			fr.Invalid = []export.InvalidEntry{{URL: "", Location: o.err.Error()}}
			report.Files = append(report.Files, fr)
			continue
		}
		fr.Valid = o.results.Valid()
		for _, d := range o.results.InvalidDetails() {
			fr.Invalid = append(fr.Invalid, export.InvalidEntry{
				URL:      d.URL,
				Location: d.Location,
			})
		}
		report.Files = append(report.Files, fr)
	}

	return report
}

// routeOutput handles output based on format flags.
func routeOutput(report *export.Report, outcomes []fileOutcome, perf *stats.Stats, quiet bool) {
	switch {
	case quiet:
		data, err := export.FormatReport(report, export.Format(strings.ToLower(outputFormat)))
		exitOnError(err, "Error formatting output")
		fmt.Print(string(data))
	case outputFile != "":
		exitOnError(export.WriteToFile(report, outputFile), "Error writing report")
		fmt.Printf("Wrote report to %s\n", outputFile)
		printSummaryLine(report.Summary)
	default:
		printScanResults(outcomes)
		printSummaryLine(report.Summary)
	}

	if showStats && !quiet {
		fmt.Print(perf.String())
	}
}

// hasFailures reports whether any file produced invalid URLs or failed to
// process.
func hasFailures(outcomes []fileOutcome) bool {
	for _, o := range outcomes {
		if o.err != nil {
			return true
		}
		if o.results.InvalidCount() > 0 {
			return true
		}
	}
	return false
}
