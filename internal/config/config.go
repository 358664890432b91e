// Package config handles loading configuration from .linksiftrc.yaml or
// .linksiftrc.toml files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config file names, checked in order.
const (
	YAMLConfigFileName = ".linksiftrc.yaml"
	TOMLConfigFileName = ".linksiftrc.toml"
)

// Default processing limits.
const (
	DefaultMaxFileSizeMB = 100
	DefaultMaxSheetRows  = 50000
	DefaultMaxSheetCols  = 200
)

// Config represents the complete configuration structure.
type Config struct {
	Limits LimitsConfig `yaml:"limits" toml:"limits"`
	Scan   ScanConfig   `yaml:"scan" toml:"scan"`
}

// LimitsConfig bounds how much of a file is processed.
type LimitsConfig struct {
	// MaxFileSizeMB rejects files larger than this before any parsing.
	MaxFileSizeMB int `yaml:"max_file_size_mb" toml:"max_file_size_mb"`

	// MaxSheetRows caps the rows read per spreadsheet sheet.
	MaxSheetRows int `yaml:"max_sheet_rows" toml:"max_sheet_rows"`

	// MaxSheetCols caps the columns read per spreadsheet row.
	MaxSheetCols int `yaml:"max_sheet_cols" toml:"max_sheet_cols"`
}

// ScanConfig holds directory scan filtering rules.
type ScanConfig struct {
	// Include patterns (glob) - if set, only matching files are scanned.
	Include []string `yaml:"include" toml:"include"`

	// Exclude patterns (glob) - matching files are skipped.
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// Default returns a config populated with the default limits.
func Default() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxFileSizeMB: DefaultMaxFileSizeMB,
			MaxSheetRows:  DefaultMaxSheetRows,
			MaxSheetCols:  DefaultMaxSheetCols,
		},
	}
}

// MaxFileSizeBytes converts the configured megabyte limit to bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.Limits.MaxFileSizeMB) * 1024 * 1024
}

// Validate checks that all configured limits are positive.
func (c *Config) Validate() error {
	if c.Limits.MaxFileSizeMB <= 0 {
		return fmt.Errorf("max_file_size_mb must be positive, got %d", c.Limits.MaxFileSizeMB)
	}
	if c.Limits.MaxSheetRows <= 0 {
		return fmt.Errorf("max_sheet_rows must be positive, got %d", c.Limits.MaxSheetRows)
	}
	if c.Limits.MaxSheetCols <= 0 {
		return fmt.Errorf("max_sheet_cols must be positive, got %d", c.Limits.MaxSheetCols)
	}
	return nil
}

// Load reads configuration starting from the current directory, walking up
// to parent directories. Returns the defaults if no config file exists (not
// an error).
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	return FindAndLoad(wd)
}

// LoadFrom reads configuration from a specific path, choosing the parser by
// extension (.toml uses TOML, everything else YAML). Missing keys keep their
// default values. Returns the defaults if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// FindAndLoad searches for a config file starting from the given directory
// and walking up to parent directories until it finds one or reaches root.
// In each directory the YAML name is checked before the TOML name.
func FindAndLoad(startDir string) (*Config, error) {
	dir := startDir

	for {
		for _, name := range []string{YAMLConfigFileName, TOMLConfigFileName} {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return LoadFrom(configPath)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}
