package export

import (
	"encoding/json"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// jsonOutput is the JSON structure for output.
type jsonOutput struct {
	GeneratedAt string      `json:"generated_at"`
	DurationMS  int64       `json:"duration_ms"`
	TotalFiles  int         `json:"total_files"`
	Summary     jsonSummary `json:"summary"`
	Files       []jsonFile  `json:"files"`
}

type jsonSummary struct {
	FilesScanned int `json:"files_scanned"`
	Valid        int `json:"valid"`
	Invalid      int `json:"invalid"`
}

type jsonFile struct {
	Path    string        `json:"path"`
	Valid   []string      `json:"valid,omitempty"`
	Invalid []jsonInvalid `json:"invalid,omitempty"`
}

type jsonInvalid struct {
	URL      string `json:"url"`
	Location string `json:"location,omitempty"`
}

// Format implements Formatter.
func (*JSONFormatter) Format(report *Report) ([]byte, error) {
	output := jsonOutput{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		DurationMS:  report.Duration.Milliseconds(),
		TotalFiles:  len(report.Files),
		Summary: jsonSummary{
			FilesScanned: report.Summary.FilesScanned,
			Valid:        report.Summary.Valid,
			Invalid:      report.Summary.Invalid,
		},
		Files: make([]jsonFile, 0, len(report.Files)),
	}

	for _, f := range report.Files {
		jf := jsonFile{Path: f.Path, Valid: f.Valid}
		for _, entry := range f.Invalid {
			jf.Invalid = append(jf.Invalid, jsonInvalid(entry))
		}
		output.Files = append(output.Files, jf)
	}

	return json.MarshalIndent(output, "", "  ")
}
