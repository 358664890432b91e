package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 100, cfg.Limits.MaxFileSizeMB)
	assert.Equal(t, 50000, cfg.Limits.MaxSheetRows)
	assert.Equal(t, 200, cfg.Limits.MaxSheetCols)
	assert.Equal(t, int64(100*1024*1024), cfg.MaxFileSizeBytes())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	t.Run("YAML", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), YAMLConfigFileName, `
limits:
  max_file_size_mb: 10
scan:
  exclude:
    - "vendor/**"
`)

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Limits.MaxFileSizeMB)
		assert.Equal(t, 50000, cfg.Limits.MaxSheetRows, "unset keys keep defaults")
		assert.Equal(t, []string{"vendor/**"}, cfg.Scan.Exclude)
	})

	t.Run("TOML", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), TOMLConfigFileName, `
[limits]
max_sheet_rows = 1000

[scan]
include = ["docs/**"]
`)

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.Limits.MaxSheetRows)
		assert.Equal(t, 100, cfg.Limits.MaxFileSizeMB, "unset keys keep defaults")
		assert.Equal(t, []string{"docs/**"}, cfg.Scan.Include)
	})

	t.Run("MissingFileReturnsDefaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), YAMLConfigFileName, "limits: [not a map")
		_, err := LoadFrom(path)
		assert.Error(t, err)
	})

	t.Run("RejectsNonPositiveLimit", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, t.TempDir(), YAMLConfigFileName, `
limits:
  max_file_size_mb: -5
`)
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "max_file_size_mb")
	})
}

func TestFindAndLoad(t *testing.T) {
	t.Parallel()

	t.Run("WalksUpToParent", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeConfig(t, root, YAMLConfigFileName, "limits:\n  max_sheet_cols: 64\n")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		cfg, err := FindAndLoad(nested)
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.Limits.MaxSheetCols)
	})

	t.Run("YAMLPreferredOverTOML", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeConfig(t, dir, YAMLConfigFileName, "limits:\n  max_sheet_rows: 111\n")
		writeConfig(t, dir, TOMLConfigFileName, "[limits]\nmax_sheet_rows = 222\n")

		cfg, err := FindAndLoad(dir)
		require.NoError(t, err)
		assert.Equal(t, 111, cfg.Limits.MaxSheetRows)
	})

	t.Run("NoConfigAnywhere", func(t *testing.T) {
		t.Parallel()
		cfg, err := FindAndLoad(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}
