package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/modtriage/internal/eval"
	"github.com/dotcommander/modtriage/internal/types"
)

// ConsoleFormatter formats a triage summary for terminal display.
type ConsoleFormatter struct {
	quiet      bool
	verbose    bool
	showScores bool
	colorize   bool
	startTime  time.Time
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose, showScores bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:      quiet,
		verbose:    verbose,
		showScores: showScores,
		colorize:   true,
		startTime:  time.Now(),
	}
}

func (f *ConsoleFormatter) verdictStyle(verdict string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	switch verdict {
	case types.VerdictKeep:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	case types.VerdictSell:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	case types.VerdictSlice:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	case types.VerdictLevel:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
	}
}

// Format renders the summary to stdout.
func (f *ConsoleFormatter) Format(summary *eval.Summary) error {
	if f.quiet {
		return nil
	}

	f.printItems(summary)
	f.printSummary(summary)
	return nil
}

func (f *ConsoleFormatter) printItems(summary *eval.Summary) {
	for _, res := range summary.Results {
		// Keep the default view scannable: sell verdicts dominate most
		// collections, so only verbose mode prints them.
		if !f.verbose && res.Evaluation.Verdict == types.VerdictSell {
			continue
		}

		style := f.verdictStyle(res.Evaluation.Verdict)
		owner := res.Item.CharacterName
		if owner == "" {
			owner = res.Item.CharacterID
		}
		fmt.Printf("%s  %s %s (%d• %s, level %d): %s\n",
			style.Render(fmt.Sprintf("%-12s", res.Evaluation.DisplayText)),
			res.Item.SetName(), res.Item.SlotName(),
			res.Item.RarityDots, types.TierName(res.Item.Tier), res.Item.Level,
			res.Evaluation.ReasonText)

		if f.verbose && owner != "" {
			fmt.Printf("              on %s, efficiency %.1f%%\n", owner, res.Efficiency)
		}
		if f.showScores && res.Evaluation.Score != nil {
			s := res.Evaluation.Score
			fmt.Printf("              score %d (base %.0f, synergy %.0f)\n",
				s.TotalScore, s.BasePoints, s.SynergyBonus)
		}
	}
}

func (f *ConsoleFormatter) printSummary(summary *eval.Summary) {
	fmt.Println()
	for _, verdict := range []string{types.VerdictKeep, types.VerdictSlice, types.VerdictLevel, types.VerdictSell} {
		stats := summary.Verdicts[verdict]
		if stats == nil || stats.Count == 0 {
			continue
		}
		style := f.verdictStyle(verdict)
		fmt.Printf("%s %d (avg efficiency %.1f%%)\n",
			style.Render(fmt.Sprintf("%-6s", verdict)), stats.Count, stats.AverageEfficiency)
	}

	duration := time.Since(f.startTime)
	fmt.Printf("\n%d mods evaluated with %q, collection efficiency %.1f%% (%v)\n",
		summary.TotalItems, summary.Workflow, summary.AverageEfficiency,
		duration.Round(time.Millisecond))

	if summary.ConfigErrors > 0 {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		fmt.Printf("%s\n", style.Render(fmt.Sprintf("%d mods hit configuration errors", summary.ConfigErrors)))
	}
}
