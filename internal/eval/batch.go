package eval

import (
	"time"

	"github.com/dotcommander/modtriage/internal/scoring"
	"github.com/dotcommander/modtriage/internal/types"
)

// ItemResult pairs an item with its evaluation and roll efficiency.
type ItemResult struct {
	Item       types.Item             `json:"item"`
	Evaluation types.EvaluationResult `json:"evaluation"`
	Efficiency float64                `json:"efficiency"`
}

// VerdictStats aggregates efficiency per verdict bucket.
type VerdictStats struct {
	Count             int     `json:"count"`
	AverageEfficiency float64 `json:"averageEfficiency"`

	total    float64
	effCount int
}

// Summary is the outcome of evaluating a whole collection.
type Summary struct {
	Workflow          string                   `json:"workflow"`
	TotalItems        int                      `json:"totalItems"`
	Results           []ItemResult             `json:"results"`
	Verdicts          map[string]*VerdictStats `json:"verdicts"`
	AverageEfficiency float64                  `json:"averageEfficiency"`
	ConfigErrors      int                      `json:"configErrors,omitempty"`
	StartTime         time.Time                `json:"-"`
}

// Options tunes batch evaluation.
type Options struct {
	// TempLocked is the host-side lock overlay: ids locked by the user
	// for this session only, merged with the in-game locked flag.
	TempLocked map[string]bool

	// WithScores attaches the full score breakdown to every result, not
	// only those produced by point_threshold checks.
	WithScores bool
}

// EvaluateAll runs every item through the workflow. Per-item errors are
// counted, never fatal: each item always receives a result.
func (e *Evaluator) EvaluateAll(items []types.Item, workflowName string, opts Options) *Summary {
	summary := &Summary{
		Workflow:   workflowName,
		TotalItems: len(items),
		Verdicts:   make(map[string]*VerdictStats),
		StartTime:  time.Now(),
	}

	var effTotal float64
	var effCount int

	for i := range items {
		item := items[i]
		if opts.TempLocked[item.ID] {
			item.Locked = true
		}

		res, err := e.Evaluate(&item, workflowName)
		if err != nil {
			summary.ConfigErrors++
		}
		if opts.WithScores && res.Score == nil {
			res.Score = scoring.Score(&item)
		}

		eff := scoring.ItemEfficiency(&item)
		summary.Results = append(summary.Results, ItemResult{
			Item:       item,
			Evaluation: res,
			Efficiency: eff,
		})

		stats := summary.Verdicts[res.Verdict]
		if stats == nil {
			stats = &VerdictStats{}
			summary.Verdicts[res.Verdict] = stats
		}
		stats.Count++
		if eff > 0 {
			stats.total += eff
			stats.effCount++
			effTotal += eff
			effCount++
		}
	}

	if effCount > 0 {
		summary.AverageEfficiency = effTotal / float64(effCount)
	}
	for _, stats := range summary.Verdicts {
		if stats.effCount > 0 {
			stats.AverageEfficiency = stats.total / float64(stats.effCount)
		}
	}
	return summary
}
