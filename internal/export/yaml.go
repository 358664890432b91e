package export

import (
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

// yamlOutput is the YAML structure for output.
type yamlOutput struct {
	GeneratedAt string      `yaml:"generated_at"`
	DurationMS  int64       `yaml:"duration_ms"`
	TotalFiles  int         `yaml:"total_files"`
	Summary     yamlSummary `yaml:"summary"`
	Files       []yamlFile  `yaml:"files"`
}

type yamlSummary struct {
	FilesScanned int `yaml:"files_scanned"`
	Valid        int `yaml:"valid"`
	Invalid      int `yaml:"invalid"`
}

type yamlFile struct {
	Path    string        `yaml:"path"`
	Valid   []string      `yaml:"valid,omitempty"`
	Invalid []yamlInvalid `yaml:"invalid,omitempty"`
}

type yamlInvalid struct {
	URL      string `yaml:"url"`
	Location string `yaml:"location,omitempty"`
}

// Format implements Formatter.
func (*YAMLFormatter) Format(report *Report) ([]byte, error) {
	output := yamlOutput{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		DurationMS:  report.Duration.Milliseconds(),
		TotalFiles:  len(report.Files),
		Summary: yamlSummary{
			FilesScanned: report.Summary.FilesScanned,
			Valid:        report.Summary.Valid,
			Invalid:      report.Summary.Invalid,
		},
		Files: make([]yamlFile, 0, len(report.Files)),
	}

	for _, f := range report.Files {
		yf := yamlFile{Path: f.Path, Valid: f.Valid}
		for _, entry := range f.Invalid {
			yf.Invalid = append(yf.Invalid, yamlInvalid(entry))
		}
		output.Files = append(output.Files, yf)
	}

	return yaml.Marshal(output)
}
