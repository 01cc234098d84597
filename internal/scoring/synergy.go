package scoring

import (
	"fmt"

	"github.com/dotcommander/modtriage/internal/types"
)

// Synergy bonus magnitudes. All applicable bonuses stack.
const (
	setAffinityBonus    = 15
	categoryMatchBonus  = 10
	perfectPrimaryBonus = 25 // the single largest bonus: Arrow + Speed primary + Speed set
)

// setSecondaryAffinity lists, per set, the secondary stats the set wants to
// see. Each present match is worth setAffinityBonus.
var setSecondaryAffinity = map[string][]int{
	types.SetHealth:     {types.StatHealth, types.StatHealthPct, types.StatProtection, types.StatProtectionPct, types.StatDefense},
	types.SetOffense:    {types.StatOffense, types.StatOffensePct, types.StatSpeed, types.StatCritChancePct, types.StatCritDamagePct},
	types.SetDefense:    {types.StatDefense, types.StatDefensePct, types.StatHealth, types.StatProtection},
	types.SetSpeed:      {types.StatSpeed, types.StatOffense, types.StatOffensePct, types.StatCritChancePct, types.StatPotencyPct},
	types.SetCritChance: {types.StatCritChancePct, types.StatCritDamagePct, types.StatOffense, types.StatSpeed},
	types.SetCritDamage: {types.StatCritDamagePct, types.StatCritChancePct, types.StatOffense, types.StatSpeed},
	types.SetPotency:    {types.StatPotencyPct, types.StatSpeed, types.StatOffense},
	types.SetTenacity:   {types.StatTenacityPct, types.StatDefense, types.StatDefensePct, types.StatHealth},
}

// statPair is a secondary-secondary combo worth a fixed bonus when both
// members are present.
type statPair struct {
	a, b  int
	bonus float64
}

var statPairs = []statPair{
	{types.StatOffense, types.StatOffensePct, 20},
	{types.StatDefense, types.StatDefensePct, 20},
	{types.StatHealth, types.StatHealthPct, 15},
	{types.StatProtection, types.StatProtectionPct, 15},
	{types.StatSpeed, types.StatOffense, 15},
	{types.StatSpeed, types.StatCritChancePct, 15},
	{types.StatSpeed, types.StatPotencyPct, 10},
}

// primaryTriple keys the exact (slot, primary stat, set) perfect matches.
type primaryTriple struct {
	slotID    string
	primaryID int
	setID     string
}

var perfectPrimaries = map[primaryTriple]float64{
	{types.SlotArrow, types.StatSpeed, types.SetSpeed}:                 perfectPrimaryBonus,
	{types.SlotTriangle, types.StatCritDamagePct, types.SetCritDamage}: 20,
	{types.SlotTriangle, types.StatCritChancePct, types.SetCritChance}: 15,
	{types.SlotCross, types.StatPotencyPct, types.SetPotency}:          15,
	{types.SlotCross, types.StatTenacityPct, types.SetTenacity}:        15,
	{types.SlotCircle, types.StatHealthPct, types.SetHealth}:           15,
}

var offensiveSets = map[string]bool{
	types.SetOffense:    true,
	types.SetSpeed:      true,
	types.SetCritChance: true,
	types.SetCritDamage: true,
	types.SetPotency:    true,
}

var offensivePrimaries = map[int]bool{
	types.StatSpeed:         true,
	types.StatOffense:       true,
	types.StatOffensePct:    true,
	types.StatCritChancePct: true,
	types.StatCritDamagePct: true,
	types.StatPotencyPct:    true,
	types.StatAccuracyPct:   true,
}

// synergies returns every triggered bonus for the item, in a stable order:
// set-secondary affinities first, then stat pairs, then the set-primary
// bonus.
func synergies(item *types.Item) []types.SynergyItem {
	var out []types.SynergyItem

	for _, statID := range setSecondaryAffinity[item.SetID] {
		if item.Secondary(statID) == nil {
			continue
		}
		out = append(out, types.SynergyItem{
			Kind:   "set-secondary",
			Detail: fmt.Sprintf("%s set favors %s", item.SetName(), types.StatName(statID)),
			Bonus:  setAffinityBonus,
		})
	}

	for _, p := range statPairs {
		if item.Secondary(p.a) == nil || item.Secondary(p.b) == nil {
			continue
		}
		out = append(out, types.SynergyItem{
			Kind:   "pair",
			Detail: fmt.Sprintf("%s + %s", types.StatName(p.a), types.StatName(p.b)),
			Bonus:  p.bonus,
		})
	}

	if s := primarySynergy(item); s != nil {
		out = append(out, *s)
	}
	return out
}

// primarySynergy scores the primary stat against the set, but only for
// slots where the primary is player-chosen. Square and Diamond primaries
// are fixed and carry no signal.
func primarySynergy(item *types.Item) *types.SynergyItem {
	if !types.SlotHasChosenPrimary(item.SlotID) || item.Primary.ID == 0 {
		return nil
	}
	triple := primaryTriple{item.SlotID, item.Primary.ID, item.SetID}
	if bonus, ok := perfectPrimaries[triple]; ok {
		return &types.SynergyItem{
			Kind:   "set-primary",
			Detail: fmt.Sprintf("%s %s primary on %s set", item.SlotName(), types.StatName(item.Primary.ID), item.SetName()),
			Bonus:  bonus,
		}
	}
	if offensiveSets[item.SetID] == offensivePrimaries[item.Primary.ID] {
		return &types.SynergyItem{
			Kind:   "set-primary",
			Detail: fmt.Sprintf("%s primary matches %s set category", types.StatName(item.Primary.ID), item.SetName()),
			Bonus:  categoryMatchBonus,
		}
	}
	return nil
}
