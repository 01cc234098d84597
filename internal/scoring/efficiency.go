package scoring

import "github.com/dotcommander/modtriage/internal/types"

// Roll efficiency measures where each roll landed inside its possible
// range. Two formulas exist in the wild; this implementation uses the
// position-based one: ((value - min) + 1) / ((max - min) + 1) * 100 per
// roll, averaged. When the payload carries no per-roll data, the stat's
// display value is compared against the static roll-range table instead
// (bounds-ratio approximation), so older payloads still get a figure.

// RollEfficiencies returns the per-roll efficiencies for a secondary stat.
// Empty when the payload carried no roll bounds or roll values.
func RollEfficiencies(sec types.SecondaryStat) []float64 {
	if sec.RollBoundsMin <= 0 || sec.RollBoundsMax <= sec.RollBoundsMin || len(sec.RollValues) == 0 {
		return nil
	}
	rangeSize := float64(sec.RollBoundsMax - sec.RollBoundsMin)
	out := make([]float64, 0, len(sec.RollValues))
	for _, v := range sec.RollValues {
		steps := float64(v - sec.RollBoundsMin)
		out = append(out, (steps+1)/(rangeSize+1)*100)
	}
	return out
}

// StatEfficiency returns the average roll efficiency for one secondary
// stat, 0-100.
func StatEfficiency(sec types.SecondaryStat) float64 {
	if rolls := RollEfficiencies(sec); len(rolls) > 0 {
		total := 0.0
		for _, r := range rolls {
			total += r
		}
		return total / float64(len(rolls))
	}
	return approximateEfficiency(sec)
}

// approximateEfficiency falls back to the static 5-dot range table: the
// average per-roll value is positioned within the stat's natural range.
func approximateEfficiency(sec types.SecondaryStat) float64 {
	r, ok := FiveDotRanges[sec.ID]
	if !ok || sec.Rolls <= 0 {
		return 0
	}
	perRoll := sec.DisplayValue() / float64(sec.Rolls)
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	eff := (perRoll - r.Min) / span * 100
	if eff < 0 {
		return 0
	}
	if eff > 100 {
		return 100
	}
	return eff
}

// ItemEfficiency is the mean stat efficiency over the item's revealed
// secondaries, 0 when none are revealed yet.
func ItemEfficiency(item *types.Item) float64 {
	if len(item.Secondaries) == 0 {
		return 0
	}
	total := 0.0
	for _, sec := range item.Secondaries {
		total += StatEfficiency(sec)
	}
	return total / float64(len(item.Secondaries))
}
