package types

// ValueDivisor converts wire "decimal" integers to real attribute values.
const ValueDivisor = 10000

// Stat is one (stat id, value) reading on a mod. Value is in natural units:
// flat stats keep their integer magnitude, percentage stats are fractions
// (0.0563 for 5.63%).
type Stat struct {
	ID    int     `json:"statId"`
	Value float64 `json:"value"`
}

// DisplayValue returns the value in human-readable units: percentage stats
// scaled by 100, everything else as-is.
func (s Stat) DisplayValue() float64 {
	if IsPercentStat(s.ID) {
		return s.Value * 100
	}
	return s.Value
}

// SecondaryStat is one of up to four randomized attributes on a mod.
// RollBoundsMin/Max and RollValues are only present on newer payloads; when
// absent, consumers fall back to the static per-stat roll-range table.
type SecondaryStat struct {
	Stat
	Rolls         int   `json:"rolls"`
	RollBoundsMin int   `json:"rollBoundsMin,omitempty"`
	RollBoundsMax int   `json:"rollBoundsMax,omitempty"`
	RollValues    []int `json:"rollValues,omitempty"`
}

// Item is the decoded, canonical unit of evaluation. It is treated as
// immutable input: evaluation and scoring never mutate it.
type Item struct {
	ID          string `json:"id"`
	SetID       string `json:"setId"`
	RarityDots  int    `json:"rarityDots"`
	SlotID      string `json:"slotId"`
	Tier        int    `json:"tier"`
	Level       int    `json:"level"`
	Locked      bool   `json:"locked"`
	CharacterID string `json:"characterId"`

	// CharacterName is display-only, resolved from an injected lookup
	// table. Empty when no table entry exists.
	CharacterName string `json:"characterName,omitempty"`

	Primary     Stat            `json:"primary"`
	Secondaries []SecondaryStat `json:"secondaries"`
}

// SetName returns the display name of the item's set.
func (it *Item) SetName() string {
	return SetNames[it.SetID]
}

// SlotName returns the display name of the item's slot.
func (it *Item) SlotName() string {
	return SlotNames[it.SlotID]
}

// Secondary returns the secondary stat with the given id, or nil when the
// item does not carry it (not rolled, or not yet revealed).
func (it *Item) Secondary(statID int) *SecondaryStat {
	for i := range it.Secondaries {
		if it.Secondaries[i].ID == statID {
			return &it.Secondaries[i]
		}
	}
	return nil
}

// IsSpeedArrow reports whether the item sits in the Arrow slot with a Speed
// primary. These are near-always worth keeping regardless of thresholds.
func (it *Item) IsSpeedArrow() bool {
	return it.SlotID == SlotArrow && it.Primary.ID == StatSpeed
}

// EvaluationResult is the outcome of running one item through a workflow.
type EvaluationResult struct {
	Verdict     string `json:"verdict"`
	DisplayText string `json:"displayText"`
	ReasonText  string `json:"reasonText"`

	// TargetLevel is set for level verdicts: the level the owner should
	// push the item to before the next judgment.
	TargetLevel int `json:"targetLevel,omitempty"`

	// Score is attached when the matching check computed one
	// (point_threshold), or when the caller requested scoring.
	Score *ScoreResult `json:"score,omitempty"`
}

// ScoreResult is the deterministic quality score for an item.
type ScoreResult struct {
	BasePoints   float64        `json:"basePoints"`
	SynergyBonus float64        `json:"synergyBonus"`
	TotalScore   int            `json:"totalScore"`
	StatPoints   []StatPoints   `json:"statPoints,omitempty"`
	Synergies    []SynergyItem  `json:"synergies,omitempty"`
}

// StatPoints is one secondary's contribution to the base score.
type StatPoints struct {
	StatID int     `json:"statId"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Points float64 `json:"points"`
}

// SynergyItem is one triggered synergy bonus.
type SynergyItem struct {
	Kind   string  `json:"kind"` // set-secondary, pair, set-primary
	Detail string  `json:"detail"`
	Bonus  float64 `json:"bonus"`
}
