// Package scoring computes the deterministic quality score of a mod: linear
// per-stat base points plus additive synergy bonuses from set, slot, and
// stat combinations. Scoring is a pure function of the item and is
// independent of any workflow.
package scoring

import (
	"math"

	"github.com/dotcommander/modtriage/internal/types"
)

// Score computes the full score breakdown for an item.
func Score(item *types.Item) *types.ScoreResult {
	res := &types.ScoreResult{}

	for _, sec := range item.Secondaries {
		points := sec.DisplayValue() * Multiplier(sec.ID)
		if points <= 0 {
			continue
		}
		res.BasePoints += points
		res.StatPoints = append(res.StatPoints, types.StatPoints{
			StatID: sec.ID,
			Name:   types.StatName(sec.ID),
			Value:  sec.DisplayValue(),
			Points: points,
		})
	}

	res.Synergies = synergies(item)
	for _, s := range res.Synergies {
		res.SynergyBonus += s.Bonus
	}

	res.TotalScore = int(math.Round(res.BasePoints + res.SynergyBonus))
	return res
}
