package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		GeneratedAt: time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC),
		Duration:    1500 * time.Millisecond,
		Files: []FileResult{
			{
				Path:  "links.csv",
				Valid: []string{"http://example.com", "https://google.com"},
				Invalid: []InvalidEntry{
					{URL: "ftp://files.example.com", Location: "row 2, column 1"},
				},
			},
			{
				Path:  "page.html",
				Valid: []string{"https://cdn.example.com/script.js"},
			},
		},
		Summary: Summary{FilesScanned: 2, Valid: 3, Invalid: 1},
	}
}

func TestIsValidFormat(t *testing.T) {
	t.Parallel()

	for _, format := range ValidFormats() {
		assert.True(t, IsValidFormat(format))
		assert.True(t, IsValidFormat(strings.ToUpper(format)))
	}
	assert.False(t, IsValidFormat("xml"))
	assert.False(t, IsValidFormat(""))
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     Format
		wantErr  bool
	}{
		{"report.csv", FormatCSV, false},
		{"report.json", FormatJSON, false},
		{"report.yaml", FormatYAML, false},
		{"report.yml", FormatYAML, false},
		{"REPORT.CSV", FormatCSV, false},
		{"report.txt", "", true},
		{"report", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			got, err := InferFormat(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatCSV)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Status", "Location", "URL"}, rows[0])
	assert.Equal(t, []string{"SUMMARY", "Valid: 3", "Invalid: 1"}, rows[1])
	assert.Contains(t, rows, []string{"Valid", "links.csv", "http://example.com"})
	assert.Contains(t, rows, []string{
		"Invalid", "links.csv (row 2, column 1)", "ftp://files.example.com",
	})
	// header + summary + 3 valid + 1 invalid
	assert.Len(t, rows, 6)
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "2026-08-26T10:30:00Z", decoded["generated_at"])
	assert.Equal(t, float64(1500), decoded["duration_ms"])
	assert.Equal(t, float64(2), decoded["total_files"])

	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, float64(3), summary["valid"])
	assert.Equal(t, float64(1), summary["invalid"])

	files := decoded["files"].([]any)
	require.Len(t, files, 2)
	second := files[1].(map[string]any)
	assert.Equal(t, "page.html", second["path"])
	assert.NotContains(t, second, "invalid", "empty invalid list is omitted")
}

func TestYAMLFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatYAML)
	require.NoError(t, err)

	var decoded struct {
		GeneratedAt string `yaml:"generated_at"`
		Files       []struct {
			Path    string   `yaml:"path"`
			Valid   []string `yaml:"valid"`
			Invalid []struct {
				URL      string `yaml:"url"`
				Location string `yaml:"location"`
			} `yaml:"invalid"`
		} `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, "2026-08-26T10:30:00Z", decoded.GeneratedAt)
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "links.csv", decoded.Files[0].Path)
	require.Len(t, decoded.Files[0].Invalid, 1)
	assert.Equal(t, "row 2, column 1", decoded.Files[0].Invalid[0].Location)
}

func TestWriteToFile(t *testing.T) {
	t.Parallel()

	t.Run("InfersFromExtension", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, WriteToFile(sampleReport(), path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, json.Valid(data))
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		t.Parallel()
		err := WriteToFile(sampleReport(), filepath.Join(t.TempDir(), "report.pdf"))
		assert.Error(t, err)
	})
}

func TestGetFormatter(t *testing.T) {
	t.Parallel()

	for _, format := range ValidFormats() {
		f, err := GetFormatter(Format(format))
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := GetFormatter(Format("xml"))
	assert.Error(t, err)
}
