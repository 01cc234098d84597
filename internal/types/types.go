// Package types provides shared types used across the modtriage codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "fmt"

// Verdict codes used throughout workflows and evaluation results.
const (
	VerdictKeep  = "keep"
	VerdictSell  = "sell"
	VerdictSlice = "slice"
	VerdictLevel = "level"
)

// Compact result codes as they appear in workflow tables.
const (
	CodeKeep  = "K"
	CodeSell  = "S"
	CodeSlice = "SL"
	CodeLevel = "LV"
)

// VerdictFromCode maps a compact result code to its verdict. Unknown codes
// map to sell, the conservative default.
func VerdictFromCode(code string) string {
	switch code {
	case CodeKeep:
		return VerdictKeep
	case CodeSell:
		return VerdictSell
	case CodeSlice:
		return VerdictSlice
	case CodeLevel:
		return VerdictLevel
	default:
		return VerdictSell
	}
}

// Unit stat identifiers from the game's wire protocol.
const (
	StatHealth        = 1
	StatSpeed         = 5
	StatCritDamagePct = 16
	StatPotencyPct    = 17
	StatTenacityPct   = 18
	StatProtection    = 28
	StatOffense       = 41
	StatDefense       = 42
	StatOffensePct    = 48
	StatDefensePct    = 49
	StatAccuracyPct   = 52
	StatCritChancePct = 53
	StatCritAvoidPct  = 54
	StatHealthPct     = 55
	StatProtectionPct = 56
)

// StatNames maps unit stat IDs to display names.
var StatNames = map[int]string{
	StatHealth:        "Health",
	StatSpeed:         "Speed",
	StatCritDamagePct: "Critical Damage %",
	StatPotencyPct:    "Potency %",
	StatTenacityPct:   "Tenacity %",
	StatProtection:    "Protection",
	StatOffense:       "Offense",
	StatDefense:       "Defense",
	StatOffensePct:    "Offense %",
	StatDefensePct:    "Defense %",
	StatAccuracyPct:   "Accuracy %",
	StatCritChancePct: "Critical Chance %",
	StatCritAvoidPct:  "Critical Avoidance %",
	StatHealthPct:     "Health %",
	StatProtectionPct: "Protection %",
}

// StatName returns the display name for a stat id, or "Stat N" for ids the
// table does not know.
func StatName(id int) string {
	if name, ok := StatNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Stat %d", id)
}

// IsPercentStat reports whether the stat's natural display unit is a
// percentage. Percentage values are stored as fractions on the canonical
// item and multiplied by 100 for display and threshold comparison.
func IsPercentStat(id int) bool {
	switch id {
	case StatCritDamagePct, StatPotencyPct, StatTenacityPct, StatOffensePct,
		StatDefensePct, StatAccuracyPct, StatCritChancePct, StatCritAvoidPct,
		StatHealthPct, StatProtectionPct:
		return true
	}
	return false
}

// Set identifiers (first digit of the definition string).
const (
	SetHealth     = "1"
	SetOffense    = "2"
	SetDefense    = "3"
	SetSpeed      = "4"
	SetCritChance = "5"
	SetCritDamage = "6"
	SetPotency    = "7"
	SetTenacity   = "8"
)

// SetNames maps set digits to display names.
var SetNames = map[string]string{
	SetHealth:     "Health",
	SetOffense:    "Offense",
	SetDefense:    "Defense",
	SetSpeed:      "Speed",
	SetCritChance: "Critical Chance",
	SetCritDamage: "Critical Damage",
	SetPotency:    "Potency",
	SetTenacity:   "Tenacity",
}

// Slot identifiers (third digit of the definition string).
const (
	SlotSquare   = "1"
	SlotArrow    = "2"
	SlotDiamond  = "3"
	SlotTriangle = "4"
	SlotCircle   = "5"
	SlotCross    = "6"
)

// SlotNames maps slot digits to display names.
var SlotNames = map[string]string{
	SlotSquare:   "Square",
	SlotArrow:    "Arrow",
	SlotDiamond:  "Diamond",
	SlotTriangle: "Triangle",
	SlotCircle:   "Circle",
	SlotCross:    "Cross",
}

// TierNames maps the 1-5 tier axis to its color name.
var TierNames = map[int]string{
	1: "grey",
	2: "green",
	3: "blue",
	4: "purple",
	5: "gold",
}

// TierName returns the color name for a tier, or "" when the tier is out of
// range.
func TierName(tier int) string {
	return TierNames[tier]
}

// Rarity bucket keys used by workflow tables.
const (
	BucketLowDots  = "dot_1-4"
	BucketFiveDots = "dot_5"
	BucketSixDots  = "dot_6"
)

// RarityBucket returns the workflow bucket key for a dot count.
func RarityBucket(dots int) string {
	switch {
	case dots <= 4:
		return BucketLowDots
	case dots >= 6:
		return BucketSixDots
	default:
		return BucketFiveDots
	}
}

// SlotHasChosenPrimary reports whether the slot's primary stat is picked by
// the player. Square and Diamond always carry a fixed primary.
func SlotHasChosenPrimary(slotID string) bool {
	return slotID != SlotSquare && slotID != SlotDiamond
}
