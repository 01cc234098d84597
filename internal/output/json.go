package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/modtriage/internal/eval"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile writes
// to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport is the top-level JSON structure.
type JSONReport struct {
	Header  JSONHeader    `json:"header"`
	Summary *eval.Summary `json:"summary"`
}

// JSONHeader identifies the tool run.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Format writes the summary as JSON.
func (f *JSONFormatter) Format(summary *eval.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "modtriage",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: summary,
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
		return fmt.Errorf("error writing JSON report: %w", err)
	}
	return nil
}
