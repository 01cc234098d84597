// Package eval runs items through workflow decision tables. Evaluation is
// total: every item gets exactly one verdict, and per-item configuration
// problems degrade to a conservative sell with a diagnostic reason instead
// of aborting the batch.
package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotcommander/modtriage/internal/checks"
	"github.com/dotcommander/modtriage/internal/types"
	"github.com/dotcommander/modtriage/internal/workflow"
)

// Evaluator classifies items against workflows held in a registry.
type Evaluator struct {
	registry *workflow.Registry
}

// New creates an Evaluator backed by the given registry.
func New(registry *workflow.Registry) *Evaluator {
	return &Evaluator{registry: registry}
}

// Evaluate classifies one item under the named workflow. The returned
// error is non-nil only for configuration problems (unknown workflow); the
// result is always usable either way.
func (e *Evaluator) Evaluate(item *types.Item, workflowName string) (types.EvaluationResult, error) {
	// Locked items short-circuit everything, including workflow lookup.
	if item.Locked {
		return types.EvaluationResult{
			Verdict:     types.VerdictKeep,
			DisplayText: "Locked",
			ReasonText:  "Mod is locked in game",
		}, nil
	}

	w, err := e.registry.Get(workflowName)
	if err != nil {
		return sellResult("Invalid workflow"), fmt.Errorf("evaluating mod %s: %w", item.ID, err)
	}

	bucket := types.RarityBucket(item.RarityDots)
	tier := types.TierName(item.Tier)
	branch, ok := w.Branch(bucket, tier)
	if tier == "" || !ok {
		fmt.Fprintf(os.Stderr, "Warning: no rules for %s %s in workflow %s\n", bucket, tier, workflowName)
		return sellResult("No evaluation rules configured"), nil
	}

	_, list, ok := branch.Select(item.Level)
	if !ok || len(list) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no checks for %s %s at level %d in workflow %s\n", bucket, tier, item.Level, workflowName)
		return sellResult("No evaluation rules for this level"), nil
	}

	// First match wins; order within the list is the tie-break.
	for _, check := range list {
		m := checks.Run(item, check)
		if m == nil {
			continue
		}
		return resultFromMatch(m), nil
	}

	// Unreachable with a validated table, since every list ends in a
	// default check.
	return sellResult("No checks passed"), nil
}

func resultFromMatch(m *checks.MatchResult) types.EvaluationResult {
	verdict := types.VerdictFromCode(m.ResultCode)
	res := types.EvaluationResult{
		Verdict:     verdict,
		DisplayText: titleCase(verdict),
		ReasonText:  m.Reason,
		TargetLevel: m.Target,
		Score:       m.Score,
	}
	if m.ResultCode == types.CodeLevel && m.Target > 0 {
		res.DisplayText = fmt.Sprintf("Level to %d", m.Target)
	}
	return res
}

func sellResult(reason string) types.EvaluationResult {
	return types.EvaluationResult{
		Verdict:     types.VerdictSell,
		DisplayText: "Sell",
		ReasonText:  reason,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
