// Package output renders triage summaries as console, JSON, or markdown
// reports.
package output

import (
	"fmt"

	"github.com/dotcommander/modtriage/internal/config"
	"github.com/dotcommander/modtriage/internal/eval"
)

// Outputter dispatches to the formatter the configuration selects.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{config: config}
}

// Format formats the summary using the configured format.
func (o *Outputter) Format(summary *eval.Summary) error {
	switch o.config.Format {
	case "console":
		formatter := NewConsoleFormatter(o.config.Quiet, o.config.Verbose, o.config.ShowScores)
		return formatter.Format(summary)
	case "json":
		formatter := NewJSONFormatter(true, o.config.Output)
		return formatter.Format(summary)
	case "markdown":
		formatter := NewMarkdownFormatter(o.config.Verbose, o.config.Output)
		return formatter.Format(summary)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
