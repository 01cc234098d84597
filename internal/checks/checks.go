// Package checks implements the fixed library of pure predicates that
// workflow tables reference by name. Each check inspects the item against
// its parameter block and either matches, yielding a result code and
// explanation, or returns nil so the evaluator tries the next check.
package checks

import (
	"fmt"
	"math"
	"os"

	"github.com/dotcommander/modtriage/internal/scoring"
	"github.com/dotcommander/modtriage/internal/types"
	"github.com/dotcommander/modtriage/internal/workflow"
)

// MatchResult is produced by a matching check.
type MatchResult struct {
	ResultCode string
	Target     int
	Reason     string

	// Score carries the full point breakdown when the check computed one
	// (point_threshold), for explanatory output.
	Score *types.ScoreResult
}

// Func is a single check predicate. Returning nil means "does not match,
// try the next check in the list".
type Func func(item *types.Item, check workflow.Check) *MatchResult

// registry maps check kinds to implementations.
var registry = map[string]Func{
	"default":         checkDefault,
	"needs_leveling":  checkNeedsLeveling,
	"stat_threshold":  checkStatThreshold,
	"combined_stats":  checkCombinedStats,
	"point_threshold": checkPointThreshold,
	"speed_arrow":     checkSpeedArrow,
}

// Known reports whether a check kind is implemented.
func Known(kind string) bool {
	_, ok := registry[kind]
	return ok
}

// Run dispatches a check by kind. Unknown kinds are reported to stderr and
// treated as never-matching: workflow tables are semi-trusted configuration
// and must not crash the evaluator.
func Run(item *types.Item, check workflow.Check) *MatchResult {
	fn, ok := registry[check.Check]
	if !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown check kind %q, skipping\n", check.Check)
		return nil
	}
	return fn(item, check)
}

func checkDefault(_ *types.Item, check workflow.Check) *MatchResult {
	reason := "Default action"
	if check.Result == types.CodeSell {
		reason = "Doesn't meet any criteria"
	}
	return &MatchResult{ResultCode: check.Result, Target: check.Target, Reason: reason}
}

func checkNeedsLeveling(item *types.Item, check workflow.Check) *MatchResult {
	if check.Target <= 0 || item.Level >= check.Target {
		return nil
	}
	return &MatchResult{
		ResultCode: check.Result,
		Target:     check.Target,
		Reason:     fmt.Sprintf("Need to reach level %d to see all stats", check.Target),
	}
}

func checkStatThreshold(item *types.Item, check workflow.Check) *MatchResult {
	statID, ok := paramStat(check.Params, "stat")
	if !ok {
		return nil
	}
	sec := item.Secondary(statID)
	if sec == nil {
		return nil
	}
	// Thresholds compare in display units, truncated, not rounded.
	value := math.Floor(sec.DisplayValue())
	name := types.StatName(statID)

	if paramBool(check.Params, "any") && value > 0 {
		return &MatchResult{
			ResultCode: check.Result,
			Target:     check.Target,
			Reason:     fmt.Sprintf("Has %s secondary", name),
		}
	}
	if min, ok := paramFloat(check.Params, "min"); ok && value >= min {
		return &MatchResult{
			ResultCode: check.Result,
			Target:     check.Target,
			Reason:     fmt.Sprintf("%s meets threshold (%s+)", name, formatThreshold(min)),
		}
	}
	return nil
}

func checkCombinedStats(item *types.Item, check workflow.Check) *MatchResult {
	entries, ok := check.Params["stats"].([]any)
	if !ok || len(entries) == 0 {
		return nil
	}
	reason := ""
	for _, raw := range entries {
		params, ok := raw.(map[string]any)
		if !ok {
			return nil
		}
		statID, ok := paramStat(params, "stat")
		if !ok {
			return nil
		}
		min, ok := paramFloat(params, "min")
		if !ok {
			return nil
		}
		sec := item.Secondary(statID)
		if sec == nil || math.Floor(sec.DisplayValue()) < min {
			return nil
		}
		if reason != "" {
			reason += " and "
		}
		reason += fmt.Sprintf("%s %s+", types.StatName(statID), formatThreshold(min))
	}
	return &MatchResult{
		ResultCode: check.Result,
		Target:     check.Target,
		Reason:     reason + " together",
	}
}

func checkPointThreshold(item *types.Item, check workflow.Check) *MatchResult {
	threshold, ok := paramFloat(check.Params, "threshold")
	if !ok {
		return nil
	}
	score := scoring.Score(item)
	if float64(score.TotalScore) < threshold {
		return nil
	}
	return &MatchResult{
		ResultCode: check.Result,
		Target:     check.Target,
		Reason:     fmt.Sprintf("Quality score %d meets threshold %s", score.TotalScore, formatThreshold(threshold)),
		Score:      score,
	}
}

func checkSpeedArrow(item *types.Item, check workflow.Check) *MatchResult {
	if !item.IsSpeedArrow() {
		return nil
	}
	return &MatchResult{
		ResultCode: check.Result,
		Target:     check.Target,
		Reason:     "Speed arrow",
	}
}

func formatThreshold(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%g", v)
}
