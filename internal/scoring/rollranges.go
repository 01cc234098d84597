package scoring

import "github.com/dotcommander/modtriage/internal/types"

// RollRange is the natural single-roll range of a secondary stat in display
// units (percent stats in percent scale).
type RollRange struct {
	Min float64
	Max float64
}

// Mean returns the expected value of one roll.
func (r RollRange) Mean() float64 {
	return (r.Min + r.Max) / 2
}

// FiveDotRanges is the static per-stat roll-range table for 5-dot mods.
// Six-dot mods reuse it: the wire payload carries explicit roll bounds for
// those, and this table is only the fallback.
var FiveDotRanges = map[int]RollRange{
	types.StatSpeed:         {3, 6},
	types.StatOffense:       {23, 46},
	types.StatOffensePct:    {0.281, 0.563},
	types.StatDefense:       {5, 10},
	types.StatDefensePct:    {0.85, 1.70},
	types.StatHealth:        {214, 429},
	types.StatHealthPct:     {0.563, 1.125},
	types.StatProtection:    {415, 831},
	types.StatProtectionPct: {1.125, 2.25},
	types.StatPotencyPct:    {1.125, 2.25},
	types.StatTenacityPct:   {1.125, 2.25},
	types.StatCritChancePct: {1.125, 2.25},
	types.StatCritDamagePct: {1.125, 2.25},
}

// Multiplier returns the per-stat point multiplier: calibrated so one
// average roll of any stat is worth about 100 points, which puts flat
// Health in the hundreds and sub-3% stats on the same scale.
func Multiplier(statID int) float64 {
	r, ok := FiveDotRanges[statID]
	if !ok || r.Mean() == 0 {
		return 0
	}
	return 100 / r.Mean()
}
