package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pmoretti/linksift/internal/config"
	"github.com/pmoretti/linksift/internal/driver"

	// Import driver subpackages to trigger their init() registration.
	_ "github.com/pmoretti/linksift/internal/driver/csvfile"
	_ "github.com/pmoretti/linksift/internal/driver/excel"
	_ "github.com/pmoretti/linksift/internal/driver/htmlfile"
	_ "github.com/pmoretti/linksift/internal/driver/markdown"
	_ "github.com/pmoretti/linksift/internal/driver/textfile"
)

// loadConfig loads the configuration file unless noConfig is true.
// Returns an error if the config file exists but is invalid.
func loadConfig(noConfig bool) (*config.Config, error) {
	if noConfig {
		return config.Default(), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// exitOnError prints an error message and exits if err is not nil.
func exitOnError(err error, message string) {
	if err != nil {
		if message != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// getPathArg returns the path argument or "." as default.
func getPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// validateFileTypes checks if all specified file types are supported.
func validateFileTypes(types []string) error {
	supportedTypes := driver.SupportedFileTypes()
	supported := make(map[string]bool, len(supportedTypes))
	for _, t := range supportedTypes {
		supported[t] = true
	}

	for _, t := range types {
		if !supported[strings.ToLower(strings.TrimPrefix(t, "."))] {
			return fmt.Errorf("unsupported file type: %s (supported: %s)",
				t, strings.Join(supportedTypes, ", "))
		}
	}
	return nil
}
