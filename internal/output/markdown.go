package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/modtriage/internal/eval"
	"github.com/dotcommander/modtriage/internal/types"
)

// MarkdownFormatter formats output as a markdown report.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format writes the summary as markdown.
func (f *MarkdownFormatter) Format(summary *eval.Summary) error {
	var b strings.Builder

	b.WriteString("# Mod Triage Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Workflow: `%s`, %d mods, collection efficiency %.1f%%\n\n",
		summary.Workflow, summary.TotalItems, summary.AverageEfficiency)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Verdict | Count | Avg Efficiency |\n")
	b.WriteString("|---------|-------|----------------|\n")
	for _, verdict := range []string{types.VerdictKeep, types.VerdictSlice, types.VerdictLevel, types.VerdictSell} {
		stats := summary.Verdicts[verdict]
		if stats == nil {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", verdict, stats.Count, stats.AverageEfficiency)
	}
	b.WriteString("\n")

	b.WriteString("## Mods\n\n")
	b.WriteString("| Mod | Verdict | Reason | Efficiency |\n")
	b.WriteString("|-----|---------|--------|------------|\n")
	for _, res := range summary.Results {
		if !f.verbose && res.Evaluation.Verdict == types.VerdictSell {
			continue
		}
		fmt.Fprintf(&b, "| %s %s %d• %s L%d | %s | %s | %.1f%% |\n",
			res.Item.SetName(), res.Item.SlotName(), res.Item.RarityDots,
			types.TierName(res.Item.Tier), res.Item.Level,
			res.Evaluation.DisplayText, res.Evaluation.ReasonText, res.Efficiency)
	}

	content := b.String()
	if f.outputFile == "" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing markdown report: %w", err)
	}
	return nil
}
