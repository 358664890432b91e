package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set by main.go via SetVersion.
var version = "dev"

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "linksift",
	Short:   "A URL validator for tabular, text, and markup files",
	Version: version,
	Long: `Linksift scans files for strings that look like URLs and reports
which of them are syntactically valid.

It understands CSV tables, Excel workbooks, plain text, HTML, and
Markdown. No network requests are made; validation is purely
syntactic. Use 'scan' for CI/scripts or 'interactive' for a
terminal UI experience.

Examples:
  linksift scan links.csv        # Validate a single file
  linksift scan ./docs           # Scan a directory
  linksift scan --format=json
  linksift interactive           # Launch interactive TUI`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1) //nolint:revive // deep-exit is acceptable for CLI entry points
	}
}
